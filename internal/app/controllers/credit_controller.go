package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/services"
	"github.com/elementa/backend/internal/middleware"
)

// CreditController handles account credit operations
type CreditController struct {
	creditService *services.CreditService
}

// NewCreditController creates a new CreditController
func NewCreditController(creditService *services.CreditService) *CreditController {
	return &CreditController{
		creditService: creditService,
	}
}

// GetOwnLedger returns the caller's credit balance and history
// @Summary Get own credit ledger
// @Description Returns the caller's balance and full transaction history
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CreditLedgerResponse} "Ledger"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/credits [get]
func (c *CreditController) GetOwnLedger(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ledger, err := c.creditService.Ledger(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ledger,
		Timestamp: time.Now(),
	})
}

// GrantCredit records an admin credit adjustment
// @Summary Grant or deduct credit
// @Description Appends a ledger entry for a user. Negative amounts deduct.
// @Tags admin-credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GrantCreditRequest true "Adjustment"
// @Success 201 {object} dto.APIResponse{data=models.CreditTransaction} "Entry recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 422 {object} dto.ErrorResponse "Balance would go negative"
// @Router /admin/credits [post]
func (c *CreditController) GrantCredit(ctx *gin.Context) {
	actorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.GrantCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	tx, err := c.creditService.Grant(ctx, actorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      tx,
		Timestamp: time.Now(),
	})
}

// GetUserLedger returns a user's credit ledger for the back office
// @Summary Get a user's credit ledger
// @Description Returns a user's balance and full transaction history
// @Tags admin-credits
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.CreditLedgerResponse} "Ledger"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/credits/{userId} [get]
func (c *CreditController) GetUserLedger(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	ledger, err := c.creditService.Ledger(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ledger,
		Timestamp: time.Now(),
	})
}
