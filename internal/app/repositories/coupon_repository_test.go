package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestCouponListWhere(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		where, args := couponListWhere(nil, nil, nil)
		assert.Equal(t, "WHERE 1=1", where)
		assert.Empty(t, args)
	})

	t.Run("active filter binds a parameter", func(t *testing.T) {
		where, args := couponListWhere(boolPtr(true), nil, nil)
		assert.Contains(t, where, "is_active = $1")
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("expired filter matches past window or exhausted cap", func(t *testing.T) {
		where, args := couponListWhere(nil, boolPtr(true), nil)
		assert.Contains(t, where, "valid_until < NOW()")
		assert.Contains(t, where, "current_uses >= max_uses")
		assert.Empty(t, args)
	})

	t.Run("not expired keeps open-ended and unlimited coupons", func(t *testing.T) {
		where, _ := couponListWhere(nil, boolPtr(false), nil)
		assert.Contains(t, where, "valid_until IS NULL OR valid_until >= NOW()")
		assert.Contains(t, where, "max_uses = 0 OR current_uses < max_uses")
	})

	t.Run("search is bound after active", func(t *testing.T) {
		where, args := couponListWhere(boolPtr(false), nil, strPtr("WELCOME"))
		assert.Contains(t, where, "is_active = $1")
		assert.Contains(t, where, "code ILIKE $2")
		assert.Equal(t, []interface{}{false, "%WELCOME%"}, args)
	})

	t.Run("empty search adds no predicate", func(t *testing.T) {
		where, args := couponListWhere(nil, nil, strPtr(""))
		assert.Equal(t, "WHERE 1=1", where)
		assert.Empty(t, args)
	})
}
