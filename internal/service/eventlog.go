package service

import (
	"context"
	"errors"
	"strings"

	"ac_learner/internal/models"
	"ac_learner/internal/repository"
)

var errInvalidTimeRange = errors.New("invalid time range: from must be <= to")

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// normalizeFilter converts bounds to UTC, upper-cases the type and
// rejects an inverted range.
func normalizeFilter(f LogFilter) (LogFilter, error) {
	f.From = toUTC(f.From)
	f.To = toUTC(f.To)
	f.Type = strings.ToUpper(strings.TrimSpace(f.Type))
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return LogFilter{}, errInvalidTimeRange
	}
	return f, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.LearningEvent, error) {
	f, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, f.From, f.To, f.Type)
}

// IsInvalidFilter reports whether err rejects a LogFilter.
func IsInvalidFilter(err error) bool {
	return errors.Is(err, errInvalidTimeRange)
}
