package session

import (
	"context"
	"fmt"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/capture"
	"ac_learner/internal/matrix"
	"ac_learner/internal/models"
)

const learnAllOption = "Learn all temperatures"

func (s *Session) learnCommands(ctx context.Context) error {
	if s.device == nil {
		s.out.warn("No device selected")
		return nil
	}
	rec, ok, err := s.chooseConfig("Learn commands")
	if err != nil || !ok {
		return err
	}
	return s.learnOperation(ctx, rec)
}

// The learning menus nest operation > fan > swing > temperature. Back at
// any level returns to the level above; codes captured so far stay in
// the record.

func (s *Session) learnOperation(ctx context.Context, rec *acconfig.Record) error {
	for {
		op, ok, err := s.chooseLabel(crumb(rec.Name, "operation mode"), rec.OperationModes)
		if err != nil || !ok {
			return err
		}
		if err := s.learnFan(ctx, rec, op); err != nil {
			return err
		}
	}
}

func (s *Session) learnFan(ctx context.Context, rec *acconfig.Record, op string) error {
	for {
		fan, ok, err := s.chooseLabel(crumb(rec.Name, op, "fan mode"), rec.FanModes)
		if err != nil || !ok {
			return err
		}
		if err := s.learnSwing(ctx, rec, op, fan); err != nil {
			return err
		}
	}
}

func (s *Session) learnSwing(ctx context.Context, rec *acconfig.Record, op, fan string) error {
	for {
		swing, ok, err := s.chooseLabel(crumb(rec.Name, op, fan, "swing mode"), rec.SwingModes)
		if err != nil || !ok {
			return err
		}
		if err := s.learnTemperature(ctx, rec, op, fan, swing); err != nil {
			return err
		}
	}
}

func (s *Session) learnTemperature(ctx context.Context, rec *acconfig.Record, op, fan, swing string) error {
	for {
		temps := rec.Temperatures()
		options := make([]string, 0, len(temps)+1)
		options = append(options, learnAllOption)
		for _, t := range temps {
			if _, learned := rec.Commands.Get(op, fan, swing, t); learned {
				t += " (learned)"
			}
			options = append(options, t)
		}

		idx, ok, err := s.choose(crumb(rec.Name, op, fan, swing, "temperature"), options)
		if err != nil || !ok {
			return err
		}
		cell := matrix.Cell{OperationMode: op, FanMode: fan, SwingMode: swing}
		if idx == 0 {
			for _, t := range temps {
				cell.Temperature = t
				if err := s.captureCell(ctx, rec, cell); err != nil {
					return err
				}
			}
			continue
		}
		cell.Temperature = temps[idx-1]
		if err := s.captureCell(ctx, rec, cell); err != nil {
			return err
		}
	}
}

// captureCell learns one code and stores it in rec, replacing any code
// learned before.
func (s *Session) captureCell(ctx context.Context, rec *acconfig.Record, cell matrix.Cell) error {
	s.out.info("Press the remote button for %s", cell)
	c := capture.New(s.device, s.interval, s.log)
	code, err := c.Capture(ctx)
	if err != nil {
		return err
	}
	rec.Learn(cell, code)
	s.log.Infow("capture_done", "config", rec.Name, "cell", cell.String(), "code_len", len(code))
	s.out.ok("Learned %s", cell)
	s.record(ctx, models.EventCapture, fmt.Sprintf("Learned %s %s", rec.Name, cell), map[string]any{
		"config":         rec.Name,
		"operation_mode": cell.OperationMode,
		"fan_mode":       cell.FanMode,
		"swing_mode":     cell.SwingMode,
		"temperature":    cell.Temperature,
		"device":         s.device.String(),
	})
	return nil
}
