package evaluations

import "context"

// Repo persists evaluation history.
type Repo interface {
	Create(ctx context.Context, record Record) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
}
