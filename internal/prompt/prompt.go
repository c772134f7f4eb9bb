// Package prompt collects menu choices and text input from the operator.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the operator interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

var errNoOptions = errors.New("prompt: no options")

// Prompter asks the operator questions. Indices refer to the options
// slice as passed in.
type Prompter interface {
	ChooseOne(title string, options []string) (int, error)
	ChooseMany(title string, options []string) ([]int, error)
	Input(message, def string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

// Survey is a terminal Prompter.
type Survey struct {
	PageSize int
	opts     []survey.AskOpt
}

// NewSurvey prompts on the process terminal.
func NewSurvey() *Survey {
	return &Survey{PageSize: 12}
}

// NewSurveyStdio prompts on the given streams.
func NewSurveyStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	s := NewSurvey()
	s.opts = append(s.opts, survey.WithStdio(in, out, errOut))
	return s
}

func (s *Survey) ChooseOne(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errNoOptions
	}
	var idx int
	q := &survey.Select{Message: title, Options: options, PageSize: s.PageSize}
	if err := survey.AskOne(q, &idx, s.opts...); err != nil {
		return 0, wrap(err)
	}
	return idx, nil
}

func (s *Survey) ChooseMany(title string, options []string) ([]int, error) {
	if len(options) == 0 {
		return nil, errNoOptions
	}
	var idx []int
	q := &survey.MultiSelect{Message: title, Options: options, PageSize: s.PageSize}
	if err := survey.AskOne(q, &idx, s.opts...); err != nil {
		return nil, wrap(err)
	}
	return idx, nil
}

func (s *Survey) Input(message, def string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, s.opts...); err != nil {
		return "", wrap(err)
	}
	return answer, nil
}

func (s *Survey) Confirm(message string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer, s.opts...); err != nil {
		return false, wrap(err)
	}
	return answer, nil
}

func wrap(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("prompt: %w", err)
}
