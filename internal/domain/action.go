package domain

import "time"

// ActionKind represents the kind of judge action a workspace can drive
type ActionKind string

const (
	ActionRun    ActionKind = "RUN"
	ActionSubmit ActionKind = "SUBMIT"
)

// ActionState is the orchestrator's state machine value. The zero value is
// Idle; at most one InFlight state exists per workspace at any instant.
type ActionState struct {
	Kind      ActionKind `json:"kind,omitempty"`
	StartedAt time.Time  `json:"startedAt,omitempty"`
	InFlight  bool       `json:"inFlight"`
}
