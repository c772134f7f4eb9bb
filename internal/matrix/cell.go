package matrix

import (
	"errors"
	"strings"
)

// ErrNotLearned reports that a referenced cell or subtree has no code.
var ErrNotLearned = errors.New("command not learned")

// Cell is one (operation, fan, swing, temperature) coordinate. Trailing
// fields may be empty when a Cell names a subtree.
type Cell struct {
	OperationMode string `json:"operation_mode"`
	FanMode       string `json:"fan_mode"`
	SwingMode     string `json:"swing_mode,omitempty"`
	Temperature   string `json:"temperature,omitempty"`
}

func (c Cell) String() string {
	parts := []string{c.OperationMode, c.FanMode}
	if c.SwingMode != "" {
		parts = append(parts, c.SwingMode)
	}
	if c.Temperature != "" {
		parts = append(parts, c.Temperature)
	}
	return strings.Join(parts, "/")
}

// NotLearnedError names the missing coordinate.
type NotLearnedError struct {
	Cell Cell
}

func (e *NotLearnedError) Error() string {
	return "command not learned: " + e.Cell.String()
}

func (e *NotLearnedError) Unwrap() error { return ErrNotLearned }
