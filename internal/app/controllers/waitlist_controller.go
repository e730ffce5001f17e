package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/services"
	"github.com/elementa/backend/internal/middleware"
	"github.com/elementa/backend/internal/pkg/csvutil"
	"github.com/elementa/backend/internal/pkg/helpers"
)

// WaitlistController handles waitlist operations
type WaitlistController struct {
	waitlistService *services.WaitlistService
}

// NewWaitlistController creates a new WaitlistController
func NewWaitlistController(waitlistService *services.WaitlistService) *WaitlistController {
	return &WaitlistController{
		waitlistService: waitlistService,
	}
}

// JoinWaitlist records a public interest signup
// @Summary Join the waitlist
// @Description Records an interest signup for the site or a specific course
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body dto.JoinWaitlistRequest true "Signup information"
// @Success 201 {object} dto.APIResponse{data=models.WaitlistEntry} "Signup recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Already on the waitlist"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /waitlist [post]
func (c *WaitlistController) JoinWaitlist(ctx *gin.Context) {
	var req dto.JoinWaitlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry, err := c.waitlistService.Join(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      entry,
		Timestamp: time.Now(),
	})
}

// ListWaitlist returns waitlist entries for the back office
// @Summary List waitlist entries
// @Description Returns waitlist entries matching the given filters
// @Tags admin-waitlist
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Filter by course"
// @Param search query string false "Match against email"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.WaitlistListResponse} "Entries"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/waitlist [get]
func (c *WaitlistController) ListWaitlist(ctx *gin.Context) {
	var filter dto.WaitlistFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	entries, err := c.waitlistService.List(ctx, &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}

// DeleteWaitlistEntry removes a waitlist entry
// @Summary Delete a waitlist entry
// @Description Removes a signup from the waitlist
// @Tags admin-waitlist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Entry deleted"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /admin/waitlist/{id} [delete]
func (c *WaitlistController) DeleteWaitlistEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.waitlistService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Entry deleted"},
		Timestamp: time.Now(),
	})
}

// ExportWaitlist streams all waitlist entries as CSV
// @Summary Export the waitlist
// @Description Downloads all waitlist entries as a CSV file
// @Tags admin-waitlist
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/waitlist/export [get]
func (c *WaitlistController) ExportWaitlist(ctx *gin.Context) {
	rows, err := c.waitlistService.ExportRows(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := csvutil.Export(ctx, "waitlist", services.WaitlistExportHeader, rows); err != nil {
		middleware.HandleAPIError(ctx, err)
	}
}
