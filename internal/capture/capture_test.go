package capture

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBusy = errors.New("device busy")

// scriptedDevice fails enter-learning enterFailures times and then
// answers CheckData from replies in order, repeating the last one.
type scriptedDevice struct {
	mu            sync.Mutex
	enterFailures int
	entered       int
	replies       []reply
	checks        int
}

type reply struct {
	data []byte
	err  error
}

func (d *scriptedDevice) EnterLearning(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entered++
	if d.entered <= d.enterFailures {
		return errBusy
	}
	return nil
}

func (d *scriptedDevice) CheckData(context.Context) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.checks
	d.checks++
	if i >= len(d.replies) {
		i = len(d.replies) - 1
	}
	return d.replies[i].data, d.replies[i].err
}

func TestCapture_RetriesUntilCode(t *testing.T) {
	dev := &scriptedDevice{
		enterFailures: 1,
		replies: []reply{
			{err: errBusy},
			{data: nil},
			{data: []byte("ABC")},
		},
	}
	c := New(dev, time.Millisecond, nil)

	code, err := c.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "QUJD", code)
	assert.Equal(t, 2, dev.entered)
	assert.Equal(t, 3, dev.checks)
}

func TestCapture_EntersLearningOnce(t *testing.T) {
	dev := &scriptedDevice{replies: []reply{{data: []byte{0x26, 0x00}}}}
	c := New(dev, time.Millisecond, nil)

	code, err := c.Capture(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JgA=", code)
	assert.Equal(t, 1, dev.entered)
}

func TestCapture_CancelledWhilePolling(t *testing.T) {
	dev := &scriptedDevice{replies: []reply{{err: errBusy}}}
	c := New(dev, 5*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Capture(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, dev.checks, 1)
}

func TestCapture_CancelledBeforeLearning(t *testing.T) {
	dev := &scriptedDevice{enterFailures: 1 << 30, replies: []reply{{data: []byte("x")}}}
	c := New(dev, time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Capture(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, dev.checks)
}
