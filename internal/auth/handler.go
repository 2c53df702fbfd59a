package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/apierror"
	"github.com/mergington/activities/pkg/response"
)

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Handler handles auth HTTP endpoints.
type Handler struct {
	gate   *Gate
	logger *zap.Logger
}

// NewHandler creates an auth handler.
func NewHandler(gate *Gate, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{gate: gate, logger: logger}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	s, err := h.gate.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, s)
}

// Session handles GET /auth/session.
func (h *Handler) Session(c *gin.Context) {
	claims, ok := h.gate.CheckSession(c.Request.Context(), BearerToken(c))
	if !ok {
		response.OK(c, gin.H{"authenticated": false})
		return
	}
	t, err := h.gate.Teacher(c.Request.Context(), claims.Username)
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"authenticated": true, "teacher": t})
}

// Logout handles POST /auth/logout.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context(), BearerToken(c)); err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{"message": "logged out"})
}
