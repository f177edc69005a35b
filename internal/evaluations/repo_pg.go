package evaluations

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new evaluation record.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO evaluations (
	id, user_id, task_text, category, urgency, emotional_weight, strategic_value,
	mki, severity, mission_killer, classifier_source, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.TaskText,
		record.Category,
		record.Urgency,
		record.EmotionalWeight,
		record.StrategicValue,
		record.MKI,
		record.Severity,
		record.MissionKiller,
		record.ClassifierSource,
		record.CreatedAt,
	)
	return err
}

// ListByUser returns a user's evaluations ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	const query = `
SELECT id, user_id, task_text, category, urgency, emotional_weight, strategic_value,
       mki, severity, mission_killer, classifier_source, created_at
FROM evaluations
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.TaskText,
			&record.Category,
			&record.Urgency,
			&record.EmotionalWeight,
			&record.StrategicValue,
			&record.MKI,
			&record.Severity,
			&record.MissionKiller,
			&record.ClassifierSource,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
