package evaluations

import (
	"context"

	"github.com/sedrickwall/AlignedAI-sub000/internal/missions"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/telemetry"
)

// Recorder adapts Service to the pipeline's best-effort history hook.
type Recorder struct {
	Svc *Service
}

// RecordEvaluation persists the outcome and swallows failures; history must
// never fail an evaluation.
func (r Recorder) RecordEvaluation(ctx context.Context, userID, taskText, source string, resp missions.TaskEvaluationResponse) {
	if r.Svc == nil || userID == "" {
		return
	}
	if _, err := r.Svc.Record(ctx, userID, taskText, source, resp); err != nil {
		telemetry.Error("evaluation.history_write_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}

var _ missions.HistoryRecorder = Recorder{}
