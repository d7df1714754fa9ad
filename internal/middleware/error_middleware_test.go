package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/burakuz/campushare/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"self connection", apperrors.ErrSelfConnection, http.StatusBadRequest},
		{"self request", apperrors.ErrSelfRequest, http.StatusBadRequest},
		{"self message", apperrors.ErrSelfMessage, http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("not yours"), http.StatusForbidden},
		{"not found", apperrors.ErrResourceNotFound, http.StatusNotFound},
		{"organization not found", apperrors.ErrOrganizationNotFound, http.StatusNotFound},
		{"username taken", apperrors.ErrUsernameAlreadyExists, http.StatusConflict},
		{"connection exists", apperrors.ErrConnectionExists, http.StatusConflict},
		{"invalid transition", apperrors.ErrInvalidTransition, http.StatusConflict},
		{"equipment unavailable", apperrors.ErrEquipmentUnavailable, http.StatusConflict},
		{"conflict", apperrors.NewConflictError("service is not active"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "connection refused")
}
