package broadlink

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDevice is returned by Discover when nothing answered.
	ErrNoDevice = errors.New("broadlink: no device found")
	// ErrDevice wraps every non-zero status word returned by a device.
	ErrDevice = errors.New("broadlink: device error")
	// ErrBadReply reports a reply that failed framing or checksum checks.
	ErrBadReply = errors.New("broadlink: malformed reply")
)

// StatusError carries the status word of a failed exchange.
type StatusError struct {
	Command uint16
	Code    uint16
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("broadlink: command 0x%02x failed with status 0x%04x", e.Command, e.Code)
}

func (e *StatusError) Unwrap() error { return ErrDevice }
