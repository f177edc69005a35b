package missions

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/metrics"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server/middleware"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server/respond"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/telemetry"
)

// HistoryRecorder persists a completed evaluation. Persistence is best
// effort; failures never surface to the caller.
type HistoryRecorder interface {
	RecordEvaluation(ctx context.Context, userID, taskText, source string, resp TaskEvaluationResponse)
}

// Handler wires HTTP handlers to the evaluation pipeline.
type Handler struct {
	Pipeline *Pipeline
	History  HistoryRecorder
}

// NewHandler constructs a Handler. history may be nil.
func NewHandler(pipeline *Pipeline, history HistoryRecorder) *Handler {
	return &Handler{Pipeline: pipeline, History: history}
}

// RegisterRoutes attaches evaluation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/evaluations", h.evaluateTask)
}

type evaluateRequest struct {
	Task    string          `json:"task"`
	Mission *MissionContext `json:"mission"`
}

func (h *Handler) evaluateTask(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Task) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "task is required", nil)
		return
	}
	if req.Mission == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "mission is required", nil)
		return
	}

	metrics.IncEvaluationStarted()
	start := time.Now()

	resp, source := h.Pipeline.Evaluate(c.Request.Context(), req.Task, *req.Mission)

	metrics.ObserveEvaluationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.IncEvaluationCompleted()
	c.Set("classifierSource", source)
	c.Set("severity", resp.MissionEvaluation.Severity)

	if h.History != nil {
		h.History.RecordEvaluation(c.Request.Context(), middleware.UserIDFromContext(c), req.Task, source, resp)
	}

	telemetry.Info("evaluation.complete", map[string]any{
		"request_id":        middleware.RequestIDFromContext(c),
		"classifier_source": source,
		"category":          resp.TaskAnalysis.Type,
		"severity":          resp.MissionEvaluation.Severity,
		"mki":               resp.MissionEvaluation.MKI,
	})

	respond.OK(c, resp)
}
