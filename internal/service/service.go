package service

import (
	"context"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/logger"
	"ac_learner/internal/models"
	"ac_learner/internal/repository"
)

// Authorization manages operators and their config-scoped tokens.
type Authorization interface {
	SignUp(ctx context.Context, username, password string, configs []string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (models.User, error)
}

// Replay reproduces a learned AC state through the IR device.
type Replay interface {
	Send(ctx context.Context, p SendParams) (models.ACState, error)
}

// Catalog exposes the loaded configs read-only.
type Catalog interface {
	List() []acconfig.Summary
	Get(name string) (*acconfig.Record, error)
}

// Monitoring exposes the last replayed state.
type Monitoring interface {
	GetState(ctx context.Context) (models.ACState, error)
}

// EventLog exposes the learning journal.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.LearningEvent, error)
}

type Service struct {
	Replay
	Catalog
	Monitoring
	EventLog
	Authorization
}

// Deps are the non-repository collaborators of the services.
type Deps struct {
	Configs *acconfig.Catalog
	// Device may be nil when no IR device was found; Send then fails
	// with ErrNoDevice.
	Device Transmitter
	Auth   AuthConfig
	Log    *logger.Logger
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	return &Service{
		Replay:        NewReplayService(deps.Configs, deps.Device, repos.StateRepo, repos.EventRepo, deps.Log),
		Catalog:       NewCatalogService(deps.Configs),
		Monitoring:    NewMonitoringService(repos.StateRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(repos.Operators, deps.Auth, deps.Configs),
	}
}
