package evaluations

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sedrickwall/AlignedAI-sub000/internal/missions"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service contains business logic for evaluation history.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Record stores the outcome of one evaluation for the given user.
func (s *Service) Record(ctx context.Context, userID, taskText, source string, resp missions.TaskEvaluationResponse) (Record, error) {
	if userID == "" {
		return Record{}, errors.New("userID is required")
	}
	record := Record{
		ID:               uuid.NewString(),
		UserID:           userID,
		TaskText:         taskText,
		Category:         resp.TaskAnalysis.Type,
		Urgency:          resp.TaskAnalysis.Urgency,
		EmotionalWeight:  resp.TaskAnalysis.EmotionalWeight,
		StrategicValue:   resp.TaskAnalysis.StrategicValue,
		MKI:              resp.MissionEvaluation.MKI,
		Severity:         resp.MissionEvaluation.Severity,
		MissionKiller:    resp.MissionEvaluation.MissionKiller,
		ClassifierSource: source,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

// ListByUser returns a user's evaluations newest-first with clamped paging.
func (s *Service) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
