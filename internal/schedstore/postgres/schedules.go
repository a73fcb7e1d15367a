package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Haston00/DABO/internal/schedstore"
)

// SaveSchedule inserts a schedule, assigning an id and creation time when
// empty. Saving an existing id replaces it.
func (s *PGStore) SaveSchedule(ctx context.Context, st *schedstore.Stored) (*schedstore.Stored, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.CreatedAt.IsZero() {
		st.CreatedAt = time.Now().UTC()
	}

	planJSON, err := json.Marshal(st.Plan)
	if err != nil {
		return nil, fmt.Errorf("schedstore: marshal plan: %w", err)
	}
	resultJSON, err := json.Marshal(st.Result)
	if err != nil {
		return nil, fmt.Errorf("schedstore: marshal result: %w", err)
	}
	summaryJSON, err := json.Marshal(st.Summary)
	if err != nil {
		return nil, fmt.Errorf("schedstore: marshal summary: %w", err)
	}

	const q = `
		INSERT INTO schedules (id, name, plan, result, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name    = excluded.name,
			plan    = excluded.plan,
			result  = excluded.result,
			summary = excluded.summary`
	if _, err := s.db.Exec(ctx, q, st.ID, st.Name, planJSON, resultJSON, summaryJSON, st.CreatedAt); err != nil {
		return nil, fmt.Errorf("schedstore: insert schedule %s: %w", st.ID, err)
	}
	return st, nil
}

// GetSchedule retrieves a full schedule by its id.
func (s *PGStore) GetSchedule(ctx context.Context, id string) (*schedstore.Stored, error) {
	var (
		st          schedstore.Stored
		planJSON    []byte
		resultJSON  []byte
		summaryJSON []byte
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, name, plan, result, summary, created_at FROM schedules WHERE id = $1`, id,
	).Scan(&st.ID, &st.Name, &planJSON, &resultJSON, &summaryJSON, &st.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", schedstore.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("schedstore: query schedule %s: %w", id, err)
	}

	if err := json.Unmarshal(planJSON, &st.Plan); err != nil {
		return nil, fmt.Errorf("schedstore: unmarshal plan: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &st.Result); err != nil {
		return nil, fmt.Errorf("schedstore: unmarshal result: %w", err)
	}
	if err := json.Unmarshal(summaryJSON, &st.Summary); err != nil {
		return nil, fmt.Errorf("schedstore: unmarshal summary: %w", err)
	}
	return &st, nil
}

// ListSchedules returns metadata for every stored schedule, newest first.
func (s *PGStore) ListSchedules(ctx context.Context) ([]schedstore.Meta, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, summary, created_at FROM schedules ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("schedstore: query schedules: %w", err)
	}
	defer rows.Close()

	var metas []schedstore.Meta
	for rows.Next() {
		var m schedstore.Meta
		var summaryJSON []byte
		if err := rows.Scan(&m.ID, &m.Name, &summaryJSON, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("schedstore: scan schedule: %w", err)
		}
		if err := json.Unmarshal(summaryJSON, &m.Summary); err != nil {
			return nil, fmt.Errorf("schedstore: unmarshal summary: %w", err)
		}
		metas = append(metas, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schedstore: rows schedules: %w", err)
	}
	return metas, nil
}

// DeleteSchedule removes the schedule with the given id.
func (s *PGStore) DeleteSchedule(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("schedstore: delete schedule %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", schedstore.ErrNotFound, id)
	}
	return nil
}
