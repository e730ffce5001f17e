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

// EnrollmentController handles checkout and enrollment operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Checkout enrolls the caller in a course or event
// @Summary Check out
// @Description Enrolls the caller in a course or event, applying an optional coupon and credits
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckoutRequest true "Checkout information"
// @Success 201 {object} dto.APIResponse{data=dto.CheckoutResponse} "Enrollment recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course or event not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled or event full"
// @Failure 422 {object} dto.ErrorResponse "Coupon ineligible or insufficient credits"
// @Router /enrollments/checkout [post]
func (c *EnrollmentController) Checkout(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrollment, err := c.enrollmentService.Checkout(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.CheckoutResponse{Enrollment: enrollment},
		Timestamp: time.Now(),
	})
}

// ListOwnEnrollments returns the caller's enrollments
// @Summary List own enrollments
// @Description Returns the caller's enrollments, newest first
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Enrollment} "Enrollments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/enrollments [get]
func (c *EnrollmentController) ListOwnEnrollments(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollments, err := c.enrollmentService.ListOwn(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// ListAllEnrollments returns enrollments for the back office
// @Summary List all enrollments
// @Description Returns enrollments matching the given filters
// @Tags admin-enrollments
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Filter by course"
// @Param eventId query int false "Filter by event"
// @Param status query string false "Filter by status" Enums(CONFIRMED, COMPLETED, CANCELLED)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentListResponse} "Enrollments"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/enrollments [get]
func (c *EnrollmentController) ListAllEnrollments(ctx *gin.Context) {
	var filter dto.EnrollmentFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)

	enrollments, err := c.enrollmentService.ListAll(ctx, &filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollments,
		Timestamp: time.Now(),
	})
}

// CompleteEnrollment marks an enrollment as completed
// @Summary Complete an enrollment
// @Description Marks a confirmed enrollment as completed and awards course credit
// @Tags admin-enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Enrollment ID"
// @Success 200 {object} dto.APIResponse{data=models.Enrollment} "Enrollment completed"
// @Failure 404 {object} dto.ErrorResponse "Enrollment not found or not confirmed"
// @Router /admin/enrollments/{id}/complete [post]
func (c *EnrollmentController) CompleteEnrollment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	actorID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	enrollment, err := c.enrollmentService.Complete(ctx, id, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrollment,
		Timestamp: time.Now(),
	})
}

// ExportEnrollments streams all enrollments as CSV
// @Summary Export enrollments
// @Description Downloads all enrollments as a CSV file
// @Tags admin-enrollments
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /admin/enrollments/export [get]
func (c *EnrollmentController) ExportEnrollments(ctx *gin.Context) {
	rows, err := c.enrollmentService.ExportRows(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := csvutil.Export(ctx, "enrollments", services.EnrollmentExportHeader, rows); err != nil {
		middleware.HandleAPIError(ctx, err)
	}
}
