package missions

import (
	"context"

	"github.com/sedrickwall/AlignedAI-sub000/internal/llm"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/metrics"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/telemetry"
)

// Pipeline is the single entry point of the alignment engine: classify
// remote-first with silent local fallback, then score. It holds no mutable
// state beyond the injected client handle and is safe for concurrent use.
type Pipeline struct {
	LLM llm.Client
}

// NewPipeline constructs a Pipeline around the given client. A nil client
// routes every evaluation to the local classifier.
func NewPipeline(client llm.Client) *Pipeline {
	return &Pipeline{LLM: client}
}

// Evaluate produces the combined response for one task. The remote attempt
// never fails the call; the returned source names which classifier served it.
func (p *Pipeline) Evaluate(ctx context.Context, taskText string, mission MissionContext) (TaskEvaluationResponse, string) {
	analysis, source := p.classify(ctx, taskText)
	evaluation := Score(analysis, mission)
	return TaskEvaluationResponse{
		TaskAnalysis:      analysis,
		MissionEvaluation: evaluation,
	}, source
}

func (p *Pipeline) classify(ctx context.Context, taskText string) (TaskAnalysis, string) {
	outcome := ClassifyRemote(ctx, p.LLM, taskText)
	if outcome.OK {
		metrics.IncClassifierRemote()
		return outcome.Analysis, SourceRemote
	}

	telemetry.Debug("classify.remote_unavailable", map[string]any{
		"reason": outcome.Reason,
	})
	metrics.IncClassifierLocal()
	return ClassifyLocal(taskText), SourceLocal
}
