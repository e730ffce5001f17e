package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/pkg/apperrors"
	"github.com/elementa/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	var details interface{}
	if errors.As(err, &custom) {
		message = custom.Message
		details = custom.Details
	}

	respond := func(status int, code dto.ErrorCode, fallback string) {
		if message == "" {
			message = fallback
		}
		detail := dto.NewErrorDetail(code, message)
		if details != nil {
			detail = detail.WithDetails(details)
		}
		c.JSON(status, dto.APIResponse{Error: detail, Timestamp: time.Now()})
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTokenNotFound):
		respond(http.StatusUnauthorized, dto.ErrorCodeTokenNotFound, "Token not found")
	case errors.Is(err, apperrors.ErrTokenRevoked):
		respond(http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Token revoked")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrSlugTaken):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Slug already in use")
	case errors.Is(err, apperrors.ErrCouponCodeTaken):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Coupon code already exists")
	case errors.Is(err, apperrors.ErrWaitlistDuplicate):
		respond(http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Already on the waitlist")
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Already enrolled")
	case errors.Is(err, apperrors.ErrEventFull):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Event is at capacity")

	case errors.Is(err, apperrors.ErrCouponIneligible):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Coupon is not eligible")
	case errors.Is(err, apperrors.ErrInsufficientCredits):
		respond(http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed, "Insufficient credit balance")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")

	case errors.Is(err, apperrors.ErrBadRequest):
		respond(http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request")

	case errors.Is(err, apperrors.ErrRateLimited):
		respond(http.StatusTooManyRequests, dto.ErrorCodeRateLimited, "Too many requests")

	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		respond(http.StatusConflict, dto.ErrorCodeConflict, "Conflict")

	case isNotFound(err):
		respond(http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

var notFoundErrors = []error{
	apperrors.ErrResourceNotFound,
	apperrors.ErrUserNotFound,
	apperrors.ErrCourseNotFound,
	apperrors.ErrEventNotFound,
	apperrors.ErrCouponNotFound,
	apperrors.ErrEnrollmentNotFound,
	apperrors.ErrWaitlistNotFound,
	apperrors.ErrElementNotFound,
	apperrors.ErrResultNotFound,
	apperrors.ErrBlogPostNotFound,
}

func isNotFound(err error) bool {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
