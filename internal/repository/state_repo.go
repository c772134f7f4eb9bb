package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ac_learner/internal/models"
)

type StateSQLite struct {
	db *sql.DB
}

func NewStateSQLite(db *sql.DB) *StateSQLite {
	return &StateSQLite{db: db}
}

const (
	acStateRowID = 1

	upsertStateSQL = `
		INSERT INTO ac_state (id, config, op_mode, fan_mode, swing_mode, temperature, device, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			config=excluded.config,
			op_mode=excluded.op_mode,
			fan_mode=excluded.fan_mode,
			swing_mode=excluded.swing_mode,
			temperature=excluded.temperature,
			device=excluded.device,
			updated_at=excluded.updated_at
	`

	selectStateSQL = `
		SELECT id, config, op_mode, fan_mode, swing_mode, temperature, device, updated_at
		FROM ac_state WHERE id=?
	`
)

// Save overwrites the single ac_state row.
func (r *StateSQLite) Save(ctx context.Context, s models.ACState) error {
	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx, upsertStateSQL,
		acStateRowID,
		s.Config,
		s.OperationMode,
		s.FanMode,
		s.SwingMode,
		s.Temperature,
		s.Device,
		ts.UTC(),
	)
	return err
}

// Load returns the zero state when nothing was replayed yet.
func (r *StateSQLite) Load(ctx context.Context) (models.ACState, error) {
	var (
		s      models.ACState
		device sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectStateSQL, acStateRowID).Scan(
		&s.ID,
		&s.Config,
		&s.OperationMode,
		&s.FanMode,
		&s.SwingMode,
		&s.Temperature,
		&device,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ACState{}, nil
		}
		return models.ACState{}, err
	}
	s.Device = device.String
	s.Sent = true
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
