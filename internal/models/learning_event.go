package models

import "time"

// Journal event types.
const (
	EventCapture = "CAPTURE"
	EventClone   = "CLONE"
	EventFill    = "FILL"
	EventCreate  = "CREATE"
	EventSave    = "SAVE"
	EventSend    = "SEND"
)

// LearningEvent is a single journal entry.
type LearningEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // CAPTURE | CLONE | FILL | CREATE | SAVE | SEND
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
