// Package apierror maps domain errors to HTTP responses.
package apierror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/pkg/response"
)

// Status returns the HTTP status and code for err.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, models.ErrActivityNotFound):
		return http.StatusNotFound, "activity_not_found"
	case errors.Is(err, models.ErrAlreadyRegistered):
		return http.StatusConflict, "already_registered"
	case errors.Is(err, models.ErrCapacityExceeded):
		return http.StatusConflict, "capacity_exceeded"
	case errors.Is(err, models.ErrNotRegistered):
		return http.StatusConflict, "not_registered"
	case errors.Is(err, models.ErrTeacherNotFound):
		return http.StatusNotFound, "teacher_not_found"
	case errors.Is(err, models.ErrInvalidFilter), errors.Is(err, models.ErrInvalidStudent), errors.Is(err, models.ErrInvalidActivity):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage_unavailable"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// Write sends the error envelope for err. Server-side failures are logged and
// their detail is not exposed to the caller.
func Write(c *gin.Context, logger *zap.Logger, err error) {
	status, code := Status(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		msg = http.StatusText(status)
	}
	response.Fail(c, status, code, msg)
}
