package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/models"
)

func TestCheckoutTotals(t *testing.T) {
	tests := []struct {
		name                       string
		price, discount, requested int64
		wantCredits, wantTotal     int64
	}{
		{"no discount no credits", 14900, 0, 0, 0, 14900},
		{"discount only", 14900, 1490, 0, 0, 13410},
		{"credits only", 14900, 0, 5000, 5000, 9900},
		{"discount then credits", 14900, 1490, 5000, 5000, 8410},
		{"credits capped at remaining after discount", 10000, 9000, 5000, 1000, 0},
		{"credits cover the whole remaining total", 10000, 0, 10000, 10000, 0},
		{"full discount leaves nothing for credits", 10000, 10000, 2000, 0, 0},
		{"discount over price floors at zero", 10000, 12000, 500, 0, 0},
		{"negative requested credits ignored", 10000, 0, -500, 0, 10000},
		{"free item", 0, 0, 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credits, total := checkoutTotals(tt.price, tt.discount, tt.requested)
			assert.Equal(t, tt.wantCredits, credits, "credits")
			assert.Equal(t, tt.wantTotal, total, "total")
			assert.GreaterOrEqual(t, total, int64(0))
		})
	}
}

func TestExportEnrollmentRow(t *testing.T) {
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("course enrollment", func(t *testing.T) {
		row := exportEnrollmentRow(&models.Enrollment{
			ID:            7,
			PriceCents:    14900,
			DiscountCents: 1490,
			CreditCents:   500,
			TotalCents:    12910,
			Status:        models.EnrollmentConfirmed,
			CreatedAt:     created,
			Course:        &models.Course{Slug: "flow-foundations"},
			User:          &models.User{Email: "member@example.com"},
		})

		require.Len(t, row, len(EnrollmentExportHeader))
		assert.Equal(t, []string{
			"7", "member@example.com", "course", "flow-foundations",
			"149.00", "14.90", "5.00", "129.10",
			"CONFIRMED", "2026-02-01T09:00:00Z",
		}, row)
	})

	t.Run("event enrollment without user relation", func(t *testing.T) {
		row := exportEnrollmentRow(&models.Enrollment{
			ID:         8,
			PriceCents: 4900,
			TotalCents: 4900,
			Status:     models.EnrollmentCompleted,
			CreatedAt:  created,
			Event:      &models.Event{Slug: "ignite-workshop"},
		})

		assert.Equal(t, "event", row[2])
		assert.Equal(t, "ignite-workshop", row[3])
		assert.Equal(t, "", row[1])
		assert.Equal(t, "COMPLETED", row[8])
	})
}
