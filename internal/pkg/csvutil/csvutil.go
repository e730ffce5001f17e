// Package csvutil writes admin CSV exports to HTTP responses.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Export streams rows as a CSV attachment. The filename gets a date suffix
// and header is written as the first record.
func Export(c *gin.Context, filename string, header []string, rows [][]string) error {
	name := fmt.Sprintf("%s-%s.csv", filename, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// FormatTime renders a timestamp for export columns.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatCents renders a cent amount as a decimal string, e.g. 1250 -> "12.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
