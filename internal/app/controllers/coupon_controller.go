package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/services"
	"github.com/elementa/backend/internal/middleware"
	"github.com/elementa/backend/internal/pkg/helpers"
)

// CouponController handles coupon operations
type CouponController struct {
	couponService *services.CouponService
}

// NewCouponController creates a new CouponController
func NewCouponController(couponService *services.CouponService) *CouponController {
	return &CouponController{
		couponService: couponService,
	}
}

// ValidateCoupon previews a coupon against an amount
// @Summary Validate a coupon
// @Description Previews the discount a coupon yields for an amount, without redeeming it
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ValidateCouponRequest true "Coupon code and amount"
// @Success 200 {object} dto.APIResponse{data=dto.ValidateCouponResponse} "Preview"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /coupons/validate [post]
func (c *CouponController) ValidateCoupon(ctx *gin.Context) {
	var req dto.ValidateCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	preview, err := c.couponService.Validate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      preview,
		Timestamp: time.Now(),
	})
}

// ListCoupons returns coupons for the back office
// @Summary List coupons
// @Description Returns coupons matching the given filters
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Filter by active flag"
// @Param expired query bool false "Filter by expired state (validity window passed or usage cap reached)"
// @Param search query string false "Match against code"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.CouponListResponse} "Coupons"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/coupons [get]
func (c *CouponController) ListCoupons(ctx *gin.Context) {
	var filter dto.CouponFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	coupons, err := c.couponService.List(ctx, &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      coupons,
		Timestamp: time.Now(),
	})
}

// GetCoupon returns a single coupon
// @Summary Get coupon details
// @Description Returns a coupon by ID
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 200 {object} dto.APIResponse{data=models.Coupon} "Coupon"
// @Failure 404 {object} dto.ErrorResponse "Coupon not found"
// @Router /admin/coupons/{id} [get]
func (c *CouponController) GetCoupon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	coupon, err := c.couponService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      coupon,
		Timestamp: time.Now(),
	})
}

// CreateCoupon adds a coupon
// @Summary Create a coupon
// @Description Creates a new promotional code
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCouponRequest true "Coupon information"
// @Success 201 {object} dto.APIResponse{data=models.Coupon} "Coupon created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Coupon code already exists"
// @Router /admin/coupons [post]
func (c *CouponController) CreateCoupon(ctx *gin.Context) {
	var req dto.CreateCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	coupon, err := c.couponService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      coupon,
		Timestamp: time.Now(),
	})
}

// UpdateCoupon modifies a coupon
// @Summary Update a coupon
// @Description Updates a coupon's terms. The code itself is immutable.
// @Tags admin-coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Param request body dto.UpdateCouponRequest true "Coupon information"
// @Success 200 {object} dto.APIResponse{data=models.Coupon} "Coupon updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Coupon not found"
// @Router /admin/coupons/{id} [put]
func (c *CouponController) UpdateCoupon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCouponRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	coupon, err := c.couponService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      coupon,
		Timestamp: time.Now(),
	})
}

// ToggleCoupon flips a coupon's active flag
// @Summary Toggle a coupon
// @Description Activates or deactivates a coupon
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 200 {object} dto.APIResponse{data=models.Coupon} "Coupon toggled"
// @Failure 404 {object} dto.ErrorResponse "Coupon not found"
// @Router /admin/coupons/{id}/toggle [post]
func (c *CouponController) ToggleCoupon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	coupon, err := c.couponService.ToggleActive(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      coupon,
		Timestamp: time.Now(),
	})
}

// DeleteCoupon removes a coupon
// @Summary Delete a coupon
// @Description Deletes a coupon that has never been redeemed
// @Tags admin-coupons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Coupon ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Coupon deleted"
// @Failure 404 {object} dto.ErrorResponse "Coupon not found"
// @Failure 409 {object} dto.ErrorResponse "Coupon has redemptions"
// @Router /admin/coupons/{id} [delete]
func (c *CouponController) DeleteCoupon(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.couponService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Coupon deleted"},
		Timestamp: time.Now(),
	})
}
