package session

import (
	"fmt"
	"strings"

	"ac_learner/internal/acconfig"
)

const backOption = "Back"

// choose offers options followed by Back. ok is false when Back was picked.
func (s *Session) choose(title string, options []string) (idx int, ok bool, err error) {
	opts := make([]string, 0, len(options)+1)
	opts = append(opts, options...)
	opts = append(opts, backOption)
	idx, err = s.prompt.ChooseOne(title, opts)
	if err != nil {
		return 0, false, err
	}
	if idx < 0 || idx >= len(options) {
		return 0, false, nil
	}
	return idx, true, nil
}

// chooseMany returns the labels picked from options.
func (s *Session) chooseMany(title string, options []string) ([]string, error) {
	idx, err := s.prompt.ChooseMany(title, options)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(options) {
			out = append(out, options[i])
		}
	}
	return out, nil
}

// chooseConfig selects a record by position. ok is false on Back or when
// there is nothing to choose from.
func (s *Session) chooseConfig(title string) (*acconfig.Record, bool, error) {
	if s.catalog.Len() == 0 {
		s.out.warn("No configs, create one first")
		return nil, false, nil
	}
	names := s.catalog.Names()
	for i, n := range names {
		if n == "" {
			names[i] = fmt.Sprintf("(unnamed #%d)", i+1)
		}
	}
	idx, ok, err := s.choose(title, names)
	if err != nil || !ok {
		return nil, false, err
	}
	return s.catalog.At(idx), true, nil
}

// chooseLabel picks one label of a mode list.
func (s *Session) chooseLabel(title string, labels []string) (string, bool, error) {
	idx, ok, err := s.choose(title, labels)
	if err != nil || !ok {
		return "", false, err
	}
	return labels[idx], true, nil
}

func crumb(parts ...string) string {
	return strings.Join(parts, " / ")
}
