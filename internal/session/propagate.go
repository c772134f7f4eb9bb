package session

import (
	"context"
	"fmt"
	"strings"

	"ac_learner/internal/matrix"
	"ac_learner/internal/models"
)

func (s *Session) cloneFanMode(ctx context.Context) error {
	rec, ok, err := s.chooseConfig("Clone fan mode")
	if err != nil || !ok {
		return err
	}
	srcOp, ok, err := s.chooseLabel(crumb(rec.Name, "source operation mode"), rec.OperationModes)
	if err != nil || !ok {
		return err
	}
	srcFan, ok, err := s.chooseLabel(crumb(rec.Name, srcOp, "source fan mode"), rec.FanModes)
	if err != nil || !ok {
		return err
	}
	dstOps, err := s.chooseMany(crumb(rec.Name, "destination operation modes"), rec.OperationModes)
	if err != nil {
		return err
	}
	dstFans, err := s.chooseMany(crumb(rec.Name, "destination fan modes"), rec.FanModes)
	if err != nil {
		return err
	}
	if len(dstOps) == 0 || len(dstFans) == 0 {
		s.out.warn("Nothing selected")
		return nil
	}

	done, err := rec.CloneFanMode(srcOp, srcFan, dstOps, dstFans)
	if err != nil {
		return err
	}
	pairs := make([]string, len(done))
	for i, c := range done {
		pairs[i] = c.OperationMode + "/" + c.FanMode
	}
	src := matrix.Cell{OperationMode: srcOp, FanMode: srcFan}
	s.log.Infow("fan_mode_cloned", "config", rec.Name, "source", src.String(), "targets", pairs)
	s.out.ok("Cloned %s to %s", src, strings.Join(pairs, ", "))
	s.record(ctx, models.EventClone, fmt.Sprintf("Cloned %s %s to %d fan modes", rec.Name, src, len(done)), map[string]any{
		"config":  rec.Name,
		"source":  src.String(),
		"targets": pairs,
	})
	return nil
}

func (s *Session) fillTemperatures(ctx context.Context) error {
	rec, ok, err := s.chooseConfig("Fill temperatures")
	if err != nil || !ok {
		return err
	}
	op, ok, err := s.chooseLabel(crumb(rec.Name, "operation mode"), rec.OperationModes)
	if err != nil || !ok {
		return err
	}
	fan, ok, err := s.chooseLabel(crumb(rec.Name, op, "fan mode"), rec.FanModes)
	if err != nil || !ok {
		return err
	}
	swing, ok, err := s.chooseLabel(crumb(rec.Name, op, fan, "swing mode"), rec.SwingModes)
	if err != nil || !ok {
		return err
	}
	temp, ok, err := s.chooseLabel(crumb(rec.Name, op, fan, swing, "source temperature"), rec.Temperatures())
	if err != nil || !ok {
		return err
	}

	src := matrix.Cell{OperationMode: op, FanMode: fan, SwingMode: swing, Temperature: temp}
	filled, err := rec.FillTemperatures(src)
	if err != nil {
		return err
	}
	if len(filled) == 0 {
		s.out.warn("Every temperature of %s/%s/%s is already learned", op, fan, swing)
		return nil
	}
	s.log.Infow("temperatures_filled", "config", rec.Name, "source", src.String(), "filled", filled)
	s.out.ok("Filled %s from %s", strings.Join(filled, ", "), src)
	s.record(ctx, models.EventFill, fmt.Sprintf("Filled %d temperatures of %s from %s", len(filled), rec.Name, src), map[string]any{
		"config": rec.Name,
		"source": src.String(),
		"filled": filled,
	})
	return nil
}
