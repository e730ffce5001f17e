package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/app/services"
	"github.com/elementa/backend/internal/middleware"
)

// AssessmentController handles the elemental energy assessment
type AssessmentController struct {
	assessmentService *services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService *services.AssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// GetQuestions returns the question bank
// @Summary List assessment questions
// @Description Returns all assessment questions in presentation order
// @Tags assessment
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionResponse} "Questions"
// @Router /assessment/questions [get]
func (c *AssessmentController) GetQuestions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      c.assessmentService.Questions(),
		Timestamp: time.Now(),
	})
}

// Submit scores a completed assessment
// @Summary Submit an assessment
// @Description Scores a full set of answers and returns the result with a shareable ID
// @Tags assessment
// @Accept json
// @Produce json
// @Param request body dto.SubmitAssessmentRequest true "Answers"
// @Success 201 {object} dto.APIResponse{data=dto.AssessmentResultResponse} "Scored result"
// @Failure 400 {object} dto.ErrorResponse "Incomplete or invalid answers"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req dto.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.assessmentService.Submit(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetResult returns a stored result
// @Summary Get an assessment result
// @Description Returns a previously scored assessment by its public ID
// @Tags assessment
// @Produce json
// @Param publicId path string true "Result public ID"
// @Success 200 {object} dto.APIResponse{data=dto.AssessmentResultResponse} "Result"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessment/results/{publicId} [get]
func (c *AssessmentController) GetResult(ctx *gin.Context) {
	result, err := c.assessmentService.GetResult(ctx, ctx.Param("publicId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
