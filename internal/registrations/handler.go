package registrations

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/apierror"
	"github.com/mergington/activities/internal/middleware"
	"github.com/mergington/activities/internal/models"
	"github.com/mergington/activities/pkg/response"
)

// StudentRequest carries the student email, from the query string, a form or a JSON body.
type StudentRequest struct {
	Email string `form:"email" json:"email" binding:"required,email"`
}

// Handler handles registration HTTP endpoints.
type Handler struct {
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a registrations handler.
func NewHandler(engine *Engine, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, logger: logger}
}

// Signup handles POST /activities/:name/signup.
func (h *Handler) Signup(c *gin.Context) {
	authenticated := middleware.IsAuthenticated(c)
	req, ok := h.bind(c, authenticated)
	if !ok {
		return
	}
	name := c.Param("name")
	a, err := h.engine.Signup(c.Request.Context(), name, req.Email, authenticated)
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{
		"message":  "Signed up " + models.NormalizeStudent(req.Email) + " for " + name,
		"activity": a,
	})
}

// Unregister handles POST /activities/:name/unregister.
func (h *Handler) Unregister(c *gin.Context) {
	authenticated := middleware.IsAuthenticated(c)
	req, ok := h.bind(c, authenticated)
	if !ok {
		return
	}
	name := c.Param("name")
	a, err := h.engine.Unregister(c.Request.Context(), name, req.Email, authenticated)
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, gin.H{
		"message":  "Unregistered " + models.NormalizeStudent(req.Email) + " from " + name,
		"activity": a,
	})
}

// bind parses the student email. Unauthenticated callers skip validation so
// they always get the same access-denied answer from the engine.
func (h *Handler) bind(c *gin.Context, authenticated bool) (StudentRequest, bool) {
	var req StudentRequest
	if !authenticated {
		return req, true
	}
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return req, false
	}
	return req, true
}
