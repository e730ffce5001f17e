package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"negative page defaults to first", -5, 10, 0, 10},
		{"zero size uses default", 2, 0, 10, DefaultPageSize},
		{"oversized size clamped to default", 1, MaxPageSize + 1, 0, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("exact division", func(t *testing.T) {
		info := NewPaginationInfo(40, 2, 10)
		assert.Equal(t, 2, info.CurrentPage)
		assert.Equal(t, 4, info.TotalPages)
		assert.Equal(t, 10, info.PageSize)
		assert.Equal(t, int64(40), info.TotalItems)
	})

	t.Run("partial last page rounds up", func(t *testing.T) {
		info := NewPaginationInfo(41, 1, 10)
		assert.Equal(t, 5, info.TotalPages)
	})

	t.Run("empty result keeps one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("page beyond range clamped", func(t *testing.T) {
		info := NewPaginationInfo(15, 9, 10)
		assert.Equal(t, 2, info.TotalPages)
		assert.Equal(t, 2, info.CurrentPage)
	})
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(query string) (int, int) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		return ParsePaginationParams(c)
	}

	t.Run("defaults", func(t *testing.T) {
		page, size := get("")
		assert.Equal(t, DefaultPage, page)
		assert.Equal(t, DefaultPageSize, size)
	})

	t.Run("explicit values", func(t *testing.T) {
		page, size := get("page=3&size=25")
		assert.Equal(t, 3, page)
		assert.Equal(t, 25, size)
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		page, size := get("page=abc&size=-1")
		assert.Equal(t, DefaultPage, page)
		assert.Equal(t, DefaultPageSize, size)
	})

	t.Run("oversized size clamped", func(t *testing.T) {
		_, size := get("size=1000")
		assert.Equal(t, DefaultPageSize, size)
	})
}
