package service

import (
	"context"
	"time"

	"ac_learner/internal/models"
	"ac_learner/internal/repository"
)

type MonitoringService struct {
	stateRepo repository.StateRepo
}

func NewMonitoringService(stateRepo repository.StateRepo) *MonitoringService {
	return &MonitoringService{stateRepo: stateRepo}
}

// GetState returns the last replayed state, or a baseline snapshot with
// Sent=false when nothing was sent yet.
func (s *MonitoringService) GetState(ctx context.Context) (models.ACState, error) {
	st, err := s.stateRepo.Load(ctx)
	if err != nil {
		return models.ACState{}, err
	}
	if st.ID == 0 {
		return baselineState(), nil
	}
	st.UpdatedAt = toUTC(st.UpdatedAt)
	return st, nil
}

func baselineState() models.ACState {
	return models.ACState{
		ID:        1,
		Sent:      false,
		UpdatedAt: time.Now().UTC(),
	}
}

func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
