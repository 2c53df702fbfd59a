package activities

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mergington/activities/internal/apierror"
	"github.com/mergington/activities/internal/schedule"
	"github.com/mergington/activities/pkg/response"
)

// Handler handles activity listing endpoints.
type Handler struct {
	catalog *Catalog
	logger  *zap.Logger
}

// NewHandler creates an activities handler.
func NewHandler(catalog *Catalog, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: catalog, logger: logger}
}

// List handles GET /activities?day=&start_time=&end_time=.
func (h *Handler) List(c *gin.Context) {
	f, err := schedule.NewFilter(c.Query("day"), c.Query("start_time"), c.Query("end_time"))
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	list, err := h.catalog.List(c.Request.Context(), f)
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// Days handles GET /activities/days. Days are sorted Monday→Sunday for display.
func (h *Handler) Days(c *gin.Context) {
	days, err := h.catalog.Days(c.Request.Context())
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	schedule.SortDays(days)
	response.OK(c, days)
}

// GetByName handles GET /activities/:name.
func (h *Handler) GetByName(c *gin.Context) {
	a, err := h.catalog.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		apierror.Write(c, h.logger, err)
		return
	}
	response.OK(c, a)
}
