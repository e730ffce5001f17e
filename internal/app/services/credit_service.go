package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elementa/backend/internal/app/models"
	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/repositories"
)

// CreditService manages the account credit ledger
type CreditService struct {
	creditRepo *repositories.CreditRepository
	userRepo   *repositories.UserRepository
	logger     zerolog.Logger
}

// NewCreditService creates a new credit service
func NewCreditService(creditRepo *repositories.CreditRepository, userRepo *repositories.UserRepository, logger zerolog.Logger) *CreditService {
	return &CreditService{
		creditRepo: creditRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Grant records an admin adjustment on a user's ledger. Negative amounts
// are allowed as long as the balance stays non-negative.
func (s *CreditService) Grant(ctx context.Context, actorID int64, req *dto.GrantCreditRequest) (*models.CreditTransaction, error) {
	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	kind := models.CreditGrant
	if req.AmountCents < 0 {
		kind = models.CreditRedeem
	}

	tx := &models.CreditTransaction{
		UserID:      req.UserID,
		AmountCents: req.AmountCents,
		Kind:        kind,
		Reason:      strings.TrimSpace(req.Reason),
		ActorID:     &actorID,
	}

	if err := s.creditRepo.Append(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("userID", req.UserID).
		Int64("amountCents", req.AmountCents).
		Int64("actorID", actorID).
		Msg("Credit adjustment recorded")

	return tx, nil
}

// Ledger returns a user's balance and full transaction history
func (s *CreditService) Ledger(ctx context.Context, userID int64) (*dto.CreditLedgerResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	balance, err := s.creditRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.creditRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.CreditLedgerResponse{
		UserID:       userID,
		BalanceCents: balance,
		Transactions: transactions,
	}, nil
}

// Balance returns a user's current credit balance
func (s *CreditService) Balance(ctx context.Context, userID int64) (int64, error) {
	return s.creditRepo.GetBalance(ctx, userID)
}
