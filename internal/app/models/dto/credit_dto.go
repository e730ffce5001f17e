package dto

import (
	"github.com/elementa/backend/internal/app/models"
)

// GrantCreditRequest represents an admin credit adjustment.
// AmountCents may be negative; the resulting balance may not be.
type GrantCreditRequest struct {
	UserID      int64  `json:"userId" binding:"required,min=1"`
	AmountCents int64  `json:"amountCents" binding:"required"`
	Reason      string `json:"reason" binding:"required,max=300"`
}

// CreditLedgerResponse represents a user's balance with history
type CreditLedgerResponse struct {
	UserID       int64                       `json:"userId"`
	BalanceCents int64                       `json:"balanceCents"`
	Transactions []*models.CreditTransaction `json:"transactions"`
}
