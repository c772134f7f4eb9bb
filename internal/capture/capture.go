package capture

import (
	"context"
	"encoding/base64"
	"time"

	"ac_learner/internal/logger"
)

// DefaultInterval is the pause between two polls of the device.
const DefaultInterval = 200 * time.Millisecond

// Device is the part of an IR transceiver needed to learn one code.
type Device interface {
	EnterLearning(ctx context.Context) error
	CheckData(ctx context.Context) ([]byte, error)
}

// Capturer learns single IR codes from a device.
type Capturer struct {
	Device   Device
	Interval time.Duration
	Log      *logger.Logger
}

// New returns a Capturer polling d every interval. A non-positive
// interval selects DefaultInterval.
func New(d Device, interval time.Duration, log *logger.Logger) *Capturer {
	return &Capturer{Device: d, Interval: interval, Log: log}
}

// attempt is the outcome of one poll: a code, or nothing yet.
type attempt struct {
	code []byte
	ok   bool
}

// Capture puts the device in learning mode and polls until it reports
// a code, returned base64 encoded. Device errors are retried; the only
// error returned is ctx.Err() after cancellation.
func (c *Capturer) Capture(ctx context.Context) (string, error) {
	if err := c.enterLearning(ctx); err != nil {
		return "", err
	}
	for n := 1; ; n++ {
		a := c.poll(ctx, n)
		if a.ok {
			c.log().Debugw("capture_done", "attempts", n, "bytes", len(a.code))
			return base64.StdEncoding.EncodeToString(a.code), nil
		}
		if err := c.wait(ctx); err != nil {
			return "", err
		}
	}
}

func (c *Capturer) enterLearning(ctx context.Context) error {
	for {
		err := c.Device.EnterLearning(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log().Debugw("enter_learning_retry", "error", err)
		if err := c.wait(ctx); err != nil {
			return err
		}
	}
}

func (c *Capturer) poll(ctx context.Context, n int) attempt {
	data, err := c.Device.CheckData(ctx)
	if err != nil {
		c.log().Debugw("capture_poll", "attempt", n, "error", err)
		return attempt{}
	}
	if len(data) == 0 {
		return attempt{}
	}
	return attempt{code: data, ok: true}
}

func (c *Capturer) wait(ctx context.Context) error {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTimer(interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Capturer) log() *logger.Logger {
	if c.Log == nil {
		return logger.Nop()
	}
	return c.Log
}
