package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/models"
	"ac_learner/internal/prompt"

	"github.com/stretchr/testify/require"
)

// answer is one scripted prompt reply. Choices are given by label; a
// label also matches a decorated option such as "24 (learned)".
type answer struct {
	one  string
	many []string
	text *string
	yes  *bool
	err  error
}

func pick(label string) answer { return answer{one: label} }
func pickMany(labels ...string) answer { return answer{many: labels} }
func input(v string) answer { return answer{text: &v} }
func confirm(v bool) answer { return answer{yes: &v} }
func back() answer { return pick(backOption) }
func abort() answer { return answer{err: prompt.ErrAborted} }
func inputs(vs ...string) []answer {
	out := make([]answer, len(vs))
	for i, v := range vs {
		out[i] = input(v)
	}
	return out
}

// scriptedPrompter replays answers in order and returns prompt.ErrAborted
// once the script runs out.
type scriptedPrompter struct {
	t       *testing.T
	answers []answer
	titles  []string
	options [][]string
}

func script(t *testing.T, answers ...answer) *scriptedPrompter {
	return &scriptedPrompter{t: t, answers: answers}
}

func (p *scriptedPrompter) next(title string, options []string) (answer, bool) {
	p.titles = append(p.titles, title)
	p.options = append(p.options, options)
	if len(p.answers) == 0 {
		return answer{}, false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

func (p *scriptedPrompter) find(title string, options []string, label string) int {
	for i, o := range options {
		if o == label || strings.HasPrefix(o, label+" ") {
			return i
		}
	}
	require.FailNowf(p.t, "unknown option", "prompt %q: no option %q in %v", title, label, options)
	return -1
}

func (p *scriptedPrompter) ChooseOne(title string, options []string) (int, error) {
	a, ok := p.next(title, options)
	if !ok {
		return 0, prompt.ErrAborted
	}
	if a.err != nil {
		return 0, a.err
	}
	return p.find(title, options, a.one), nil
}

func (p *scriptedPrompter) ChooseMany(title string, options []string) ([]int, error) {
	a, ok := p.next(title, options)
	if !ok {
		return nil, prompt.ErrAborted
	}
	if a.err != nil {
		return nil, a.err
	}
	idx := make([]int, len(a.many))
	for i, l := range a.many {
		idx[i] = p.find(title, options, l)
	}
	return idx, nil
}

func (p *scriptedPrompter) Input(message, def string) (string, error) {
	a, ok := p.next(message, []string{def})
	if !ok {
		return "", prompt.ErrAborted
	}
	if a.err != nil {
		return "", a.err
	}
	if a.text == nil {
		require.FailNowf(p.t, "wrong answer kind", "prompt %q: expected a text answer", message)
	}
	return *a.text, nil
}

func (p *scriptedPrompter) Confirm(message string, def bool) (bool, error) {
	a, ok := p.next(message, nil)
	if !ok {
		return false, prompt.ErrAborted
	}
	if a.err != nil {
		return false, a.err
	}
	if a.yes == nil {
		require.FailNowf(p.t, "wrong answer kind", "prompt %q: expected a confirm answer", message)
	}
	return *a.yes, nil
}

func (p *scriptedPrompter) done() {
	p.t.Helper()
	require.Emptyf(p.t, p.answers, "%d scripted answers left unused", len(p.answers))
}

// fakeDevice hands out codes 0x01, 0x02, ... one per learning cycle.
type fakeDevice struct {
	mu      sync.Mutex
	addr    string
	authErr error
	silent  bool
	next    byte
	entered int
	pending bool
}

func (d *fakeDevice) Auth(context.Context) error { return d.authErr }

func (d *fakeDevice) EnterLearning(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entered++
	d.pending = true
	return nil
}

func (d *fakeDevice) CheckData(context.Context) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending || d.silent {
		return nil, errors.New("no data")
	}
	d.pending = false
	d.next++
	return []byte{d.next}, nil
}

func (d *fakeDevice) Addr() string   { return d.addr }
func (d *fakeDevice) String() string { return fmt.Sprintf("RM4 mini %s", d.addr) }

// memStore is an in-memory Saver.
type memStore struct {
	saved *acconfig.Catalog
	saves int
	err   error
}

func (m *memStore) Save(c *acconfig.Catalog) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.saved = c
	return nil
}

func (m *memStore) Path() string { return "ac_configs.json" }

type memJournal struct {
	events []models.LearningEvent
	err    error
}

func (j *memJournal) Append(_ context.Context, e models.LearningEvent) error {
	j.events = append(j.events, e)
	return j.err
}

func (j *memJournal) types() []string {
	out := make([]string, len(j.events))
	for i, e := range j.events {
		out[i] = e.Type
	}
	return out
}
