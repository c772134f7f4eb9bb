package service

import "time"

// SendParams selects one learned cell to replay.
type SendParams struct {
	Config        string `json:"config"`
	OperationMode string `json:"operation_mode"`
	FanMode       string `json:"fan_mode"`
	SwingMode     string `json:"swing_mode"`
	Temperature   string `json:"temperature"`
}

// LogFilter narrows a journal listing.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", CAPTURE, CLONE, FILL, CREATE, SAVE, SEND
}

// AuthConfig configures token issuing.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}
