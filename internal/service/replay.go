package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/logger"
	"ac_learner/internal/matrix"
	"ac_learner/internal/models"
	"ac_learner/internal/repository"

	"github.com/google/uuid"
)

// Transmitter sends raw IR codes.
type Transmitter interface {
	SendData(ctx context.Context, code []byte) error
	String() string
}

var (
	// ErrNoDevice is returned by Send when no IR device is attached.
	ErrNoDevice = errors.New("no IR device available")

	errInvalidSend = errors.New("config, operation_mode, fan_mode, swing_mode and temperature are required")
)

type ReplayService struct {
	configs   *acconfig.Catalog
	device    Transmitter
	stateRepo repository.StateRepo
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewReplayService(configs *acconfig.Catalog, device Transmitter, stateRepo repository.StateRepo, eventRepo repository.EventRepo, log *logger.Logger) *ReplayService {
	if configs == nil {
		configs = acconfig.NewCatalog()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReplayService{configs: configs, device: device, stateRepo: stateRepo, eventRepo: eventRepo, log: log}
}

// Send transmits the code learned for p and records the reproduced state.
// The code is sent before anything is persisted; a failed state save or
// journal append is logged and does not fail the call.
func (s *ReplayService) Send(ctx context.Context, p SendParams) (models.ACState, error) {
	p = trimSendParams(p)
	if p.Config == "" || p.OperationMode == "" || p.FanMode == "" || p.SwingMode == "" || p.Temperature == "" {
		return models.ACState{}, errInvalidSend
	}

	rec, ok := s.configs.Find(p.Config)
	if !ok {
		return models.ACState{}, fmt.Errorf("%w: %q", ErrConfigNotFound, p.Config)
	}
	cell := matrix.Cell{
		OperationMode: p.OperationMode,
		FanMode:       p.FanMode,
		SwingMode:     p.SwingMode,
		Temperature:   p.Temperature,
	}
	encoded, ok := rec.Commands.Lookup(cell)
	if !ok {
		return models.ACState{}, &matrix.NotLearnedError{Cell: cell}
	}
	code, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return models.ACState{}, fmt.Errorf("decode code at %s: %w", cell, err)
	}
	if s.device == nil {
		return models.ACState{}, ErrNoDevice
	}
	if err := s.device.SendData(ctx, code); err != nil {
		return models.ACState{}, fmt.Errorf("send %s/%s: %w", p.Config, cell, err)
	}

	now := time.Now().UTC()
	st := models.ACState{
		ID:            1,
		Config:        p.Config,
		OperationMode: p.OperationMode,
		FanMode:       p.FanMode,
		SwingMode:     p.SwingMode,
		Temperature:   p.Temperature,
		Device:        s.device.String(),
		Sent:          true,
		UpdatedAt:     now,
	}
	s.log.Infow("code_sent", "config", p.Config, "cell", cell.String(), "device", st.Device)

	if err := s.stateRepo.Save(ctx, st); err != nil {
		s.log.Errorw("save_state_failed", "error", err)
	}
	err = s.eventRepo.Append(ctx, models.LearningEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventSend,
		Description: "Sent " + p.Config + " " + cell.String(),
		Metadata: map[string]any{
			"config":         p.Config,
			"operation_mode": p.OperationMode,
			"fan_mode":       p.FanMode,
			"swing_mode":     p.SwingMode,
			"temperature":    p.Temperature,
			"bytes":          len(code),
		},
	})
	if err != nil {
		s.log.Errorw("journal_append_failed", "type", models.EventSend, "error", err)
	}
	return st, nil
}

func trimSendParams(p SendParams) SendParams {
	p.Config = strings.TrimSpace(p.Config)
	p.OperationMode = strings.TrimSpace(p.OperationMode)
	p.FanMode = strings.TrimSpace(p.FanMode)
	p.SwingMode = strings.TrimSpace(p.SwingMode)
	p.Temperature = strings.TrimSpace(p.Temperature)
	return p
}

// IsInvalidSend reports whether err rejects the request parameters.
func IsInvalidSend(err error) bool {
	return errors.Is(err, errInvalidSend)
}
