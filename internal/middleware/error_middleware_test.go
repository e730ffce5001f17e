package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elementa/backend/internal/app/models/dto"
	"github.com/elementa/backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	HandleAPIError(c, err)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return w.Code, &resp
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"slug taken", apperrors.ErrSlugTaken, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeConflict},
		{"event full", apperrors.ErrEventFull, http.StatusConflict, dto.ErrorCodeConflict},
		{"coupon ineligible", apperrors.ErrCouponIneligible, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"insufficient credits", apperrors.ErrInsufficientCredits, http.StatusUnprocessableEntity, dto.ErrorCodeValidationFailed},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"coupon not found", apperrors.ErrCouponNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"result not found", apperrors.ErrResultNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"rate limited", apperrors.ErrRateLimited, http.StatusTooManyRequests, dto.ErrorCodeRateLimited},
		{"unknown error", assert.AnError, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}

	t.Run("custom error carries message and details", func(t *testing.T) {
		err := apperrors.NewValidationError("rating out of range")
		status, resp := handleError(t, err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, resp.Error.Message, "rating out of range")
	})
}
