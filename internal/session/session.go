// Package session drives the interactive learner: device selection,
// config creation, the learning state machine and propagation.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"ac_learner/internal/acconfig"
	"ac_learner/internal/broadlink"
	"ac_learner/internal/capture"
	"ac_learner/internal/logger"
	"ac_learner/internal/models"
	"ac_learner/internal/prompt"

	"github.com/google/uuid"
)

// Device is an IR transceiver the session can learn through.
type Device interface {
	capture.Device
	Auth(ctx context.Context) error
	// Addr is the device host shown in the main menu title.
	Addr() string
	String() string
}

// DiscoverFunc lists the devices reachable right now. Finding none is
// reported as ErrNoDevice or as an empty result.
type DiscoverFunc func(ctx context.Context) ([]Device, error)

// ErrNoDevice is the DiscoverFunc result when nothing answered.
var ErrNoDevice = broadlink.ErrNoDevice

// Saver persists the catalog.
type Saver interface {
	Save(c *acconfig.Catalog) error
	Path() string
}

// Journal receives learning events.
type Journal interface {
	Append(ctx context.Context, e models.LearningEvent) error
}

// Options wires a Session. Catalog, Store, Prompt and Discover are required.
type Options struct {
	Catalog      *acconfig.Catalog
	Store        Saver
	Prompt       prompt.Prompter
	Discover     DiscoverFunc
	Journal      Journal
	PollInterval time.Duration
	Out          io.Writer
	Log          *logger.Logger
}

// Session owns the records being edited and the selected device for one
// interactive run. It is not safe for concurrent use.
type Session struct {
	catalog  *acconfig.Catalog
	store    Saver
	prompt   prompt.Prompter
	discover DiscoverFunc
	journal  Journal
	interval time.Duration
	out      *printer
	log      *logger.Logger

	device Device
}

func New(opts Options) *Session {
	s := &Session{
		catalog:  opts.Catalog,
		store:    opts.Store,
		prompt:   opts.Prompt,
		discover: opts.Discover,
		journal:  opts.Journal,
		interval: opts.PollInterval,
		log:      opts.Log,
	}
	if s.catalog == nil {
		s.catalog = acconfig.NewCatalog()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	s.out = newPrinter(out)
	return s
}

// Catalog returns the records owned by the session.
func (s *Session) Catalog() *acconfig.Catalog { return s.catalog }

// Device returns the selected device, or nil.
func (s *Session) Device() Device { return s.device }

const (
	actionSelectDevice = "Select device"
	actionCreate       = "Create config"
	actionLearn        = "Learn commands"
	actionList         = "List configs"
	actionClone        = "Clone fan mode"
	actionFill         = "Fill temperatures"
	actionExit         = "Exit"
)

var mainMenu = []string{
	actionSelectDevice,
	actionCreate,
	actionLearn,
	actionList,
	actionClone,
	actionFill,
	actionExit,
}

// Run shows the main menu until the operator exits. It returns nil after
// Exit, prompt.ErrAborted when the main menu is interrupted, and ctx.Err()
// when ctx is cancelled during a capture.
func (s *Session) Run(ctx context.Context) error {
	for {
		idx, err := s.prompt.ChooseOne(s.title(), mainMenu)
		if err != nil {
			return err
		}
		action := mainMenu[idx]
		if action == actionExit {
			done, err := s.exit()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}

		err = s.dispatch(ctx, action)
		switch {
		case err == nil:
		case errors.Is(err, prompt.ErrAborted):
			s.out.warn("Cancelled")
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			s.out.fail("%s failed: %v", action, err)
		}
	}
}

func (s *Session) title() string {
	host := "None"
	if s.device != nil {
		host = s.device.Addr()
	}
	return "Main - " + host
}

func (s *Session) dispatch(ctx context.Context, action string) error {
	switch action {
	case actionSelectDevice:
		return s.selectDevice(ctx)
	case actionCreate:
		return s.createConfig(ctx)
	case actionLearn:
		return s.learnCommands(ctx)
	case actionList:
		return s.listConfigs()
	case actionClone:
		return s.cloneFanMode(ctx)
	case actionFill:
		return s.fillTemperatures(ctx)
	}
	return fmt.Errorf("unknown action %q", action)
}

func (s *Session) selectDevice(ctx context.Context) error {
	s.out.info("Searching for devices...")
	devices, err := s.discover(ctx)
	if err != nil && !errors.Is(err, ErrNoDevice) {
		return err
	}
	if len(devices) == 0 {
		s.out.warn("No devices found")
		return nil
	}

	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.String()
	}
	idx, ok, err := s.choose("Select device", names)
	if err != nil || !ok {
		return err
	}
	d := devices[idx]
	if err := d.Auth(ctx); err != nil {
		return fmt.Errorf("authenticate %s: %w", d, err)
	}
	s.device = d
	s.log.Infow("device_selected", "device", d.String())
	s.out.ok("Selected %s", d)
	return nil
}

func (s *Session) listConfigs() error {
	if s.catalog.Len() == 0 {
		s.out.warn("No configs")
		return nil
	}
	return acconfig.WriteSummaries(s.out.w, s.catalog)
}

// exit asks whether to save. It reports done=false when saving failed so
// the operator can retry from the main menu.
func (s *Session) exit() (bool, error) {
	save, err := s.prompt.Confirm(fmt.Sprintf("Save %d configs to %s?", s.catalog.Len(), s.store.Path()), true)
	if err != nil {
		return false, err
	}
	if !save {
		return true, nil
	}
	if err := s.store.Save(s.catalog); err != nil {
		s.log.Errorw("save_failed", "path", s.store.Path(), "error", err)
		s.out.fail("Save failed: %v", err)
		return false, nil
	}
	s.out.ok("Saved %d configs to %s", s.catalog.Len(), s.store.Path())
	s.record(context.Background(), models.EventSave, fmt.Sprintf("Saved %d configs", s.catalog.Len()),
		map[string]any{"path": s.store.Path(), "configs": s.catalog.Len()})
	return true, nil
}

// record appends a journal event. Failures are logged only.
func (s *Session) record(ctx context.Context, typ, desc string, meta map[string]any) {
	if s.journal == nil {
		return
	}
	err := s.journal.Append(ctx, models.LearningEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		s.log.Errorw("journal_append_failed", "type", typ, "error", err)
	}
}
