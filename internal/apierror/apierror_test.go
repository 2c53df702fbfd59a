package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/pkg/response"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{models.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{models.ErrActivityNotFound, http.StatusNotFound, "activity_not_found"},
		{models.ErrAlreadyRegistered, http.StatusConflict, "already_registered"},
		{models.ErrCapacityExceeded, http.StatusConflict, "capacity_exceeded"},
		{models.ErrNotRegistered, http.StatusConflict, "not_registered"},
		{fmt.Errorf("%w: bad day", models.ErrInvalidFilter), http.StatusBadRequest, "invalid_request"},
		{fmt.Errorf("%w: max_participants must be positive", models.ErrInvalidActivity), http.StatusBadRequest, "invalid_request"},
		{models.ErrTeacherNotFound, http.StatusNotFound, "teacher_not_found"},
		{models.StorageError(errors.New("conn reset")), http.StatusServiceUnavailable, "storage_unavailable"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		status, code := Status(tt.err)
		require.Equal(t, tt.status, status, tt.err.Error())
		require.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestWrite_HidesServerErrorDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		Write(c, zap.NewNop(), models.StorageError(errors.New("dial tcp 10.0.0.1:5432")))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body response.Body
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)
	require.Equal(t, "storage_unavailable", body.Code)
	require.NotContains(t, body.Error, "10.0.0.1")
}
