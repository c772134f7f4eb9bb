package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/models"
)

// createConfig asks for every field, offering the creation defaults, and
// appends the validated record to the catalog.
func (s *Session) createConfig(ctx context.Context) error {
	rec := acconfig.New()

	name, err := s.prompt.Input("Name", rec.Name)
	if err != nil {
		return err
	}
	rec.Name = strings.TrimSpace(name)

	for _, f := range []struct {
		msg string
		dst *int
	}{
		{"Minimum temperature", &rec.MinTemperature},
		{"Maximum temperature", &rec.MaxTemperature},
		{"Precision", &rec.Precision},
	} {
		if err := s.inputInt(f.msg, f.dst); err != nil {
			return err
		}
	}

	for _, f := range []struct {
		msg string
		dst *[]string
	}{
		{"Operation modes", &rec.OperationModes},
		{"Fan modes", &rec.FanModes},
		{"Swing modes", &rec.SwingModes},
	} {
		if err := s.inputList(f.msg, f.dst); err != nil {
			return err
		}
	}

	if err := rec.Validate(); err != nil {
		return err
	}
	if dup := s.catalog.Add(rec); dup {
		s.log.Warnw("duplicate_config_name", "name", rec.Name)
		s.out.warn("Another config is already named %q", rec.Name)
	}
	s.out.ok("Created config %q with %d temperatures", rec.Name, len(rec.Temperatures()))
	s.record(ctx, models.EventCreate, "Created config "+rec.Name, map[string]any{
		"config":          rec.Name,
		"min_temperature": rec.MinTemperature,
		"max_temperature": rec.MaxTemperature,
		"precision":       rec.Precision,
	})
	return nil
}

func (s *Session) inputInt(msg string, dst *int) error {
	raw, err := s.prompt.Input(msg, strconv.Itoa(*dst))
	if err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %q is not a whole number", strings.ToLower(msg), raw)
	}
	*dst = v
	return nil
}

// inputList reads a comma separated list. Blank input keeps the default.
func (s *Session) inputList(msg string, dst *[]string) error {
	raw, err := s.prompt.Input(msg+" (comma separated)", strings.Join(*dst, ", "))
	if err != nil {
		return err
	}
	if labels := splitLabels(raw); len(labels) > 0 {
		*dst = labels
	}
	return nil
}

func splitLabels(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if l := strings.TrimSpace(part); l != "" {
			out = append(out, l)
		}
	}
	return out
}
