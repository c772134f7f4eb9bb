package models

import "time"

// ACState is the operating state most recently reproduced by a replay.
type ACState struct {
	ID            int       `json:"id"`
	Config        string    `json:"config"`
	OperationMode string    `json:"operation_mode"`
	FanMode       string    `json:"fan_mode"`
	SwingMode     string    `json:"swing_mode"`
	Temperature   string    `json:"temperature"`
	Device        string    `json:"device,omitempty"` // host the code was sent through
	Sent          bool      `json:"sent"`
	UpdatedAt     time.Time `json:"updated_at"`
}
