package models

import "time"

// CreditTransaction is one entry in a user's append-only credit ledger.
// Balance is the sum of AmountCents over all of a user's entries.
type CreditTransaction struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	AmountCents int64      `json:"amountCents" db:"amount_cents"` // signed, negative for redemptions
	Kind        CreditKind `json:"kind" db:"kind"`
	Reason      string     `json:"reason" db:"reason"`
	ActorID     *int64     `json:"actorId,omitempty" db:"actor_id"` // admin who recorded the entry, if any
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}
