package evaluations

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server/middleware"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server/respond"
)

// Handler serves evaluation history.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/evaluations", h.listEvaluations)
}

func (h *Handler) listEvaluations(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)

	limit := 0
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	records, err := h.Svc.ListByUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list evaluations", nil)
		return
	}

	respond.OK(c, gin.H{"evaluations": records})
}
