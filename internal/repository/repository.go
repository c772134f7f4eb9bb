package repository

import (
	"context"
	"database/sql"
	"time"

	"ac_learner/internal/models"
)

// Operators allowed to use the HTTP API, each scoped to a set of configs.
type Operators interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo keeps the single most recently replayed AC state.
type StateRepo interface {
	Save(ctx context.Context, s models.ACState) error
	Load(ctx context.Context) (models.ACState, error)
}

// EventRepo is the append-only learning journal.
type EventRepo interface {
	Append(ctx context.Context, e models.LearningEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.LearningEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Operators Operators
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StateRepo: NewStateSQLite(db),
		EventRepo: NewEventSQLite(db),
		Operators: NewUserRepository(db),
	}
}
