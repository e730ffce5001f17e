package csvutil

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCents(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{1250, "12.50"},
		{14900, "149.00"},
		{-500, "-5.00"},
		{-1, "-0.01"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCents(tt.cents))
	}
}

func TestFormatTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, loc)
	assert.Equal(t, "2026-03-14T09:30:00Z", FormatTime(ts))
}

func TestExport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/export", nil)

	header := []string{"id", "email", "total"}
	rows := [][]string{
		{"1", "a@example.com", "12.50"},
		{"2", "b@example.com", "0.00"},
	}

	err := Export(c, "enrollments", header, rows)
	require.NoError(t, err)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "enrollments-")
	assert.Contains(t, disposition, ".csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,email,total", lines[0])
	assert.Equal(t, "1,a@example.com,12.50", lines[1])
}
