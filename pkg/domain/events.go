package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventBeliefUpdate   EventType = "belief_update"
	EventActionSelected EventType = "action_selected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// BeliefEvent is emitted after a successful belief update.
type BeliefEvent struct {
	EventBase
	Action      int     `json:"action"`
	Observation int     `json:"observation"`
	Prior       Belief  `json:"prior"`
	Posterior   Belief  `json:"posterior"`
	Normalizer  float64 `json:"normalizer"` // P(o | a, prior)
}

// ActionEvent is emitted after the policy picked an action.
type ActionEvent struct {
	EventBase
	Action int     `json:"action"`
	Value  float64 `json:"value"`
	Vector int     `json:"vector"` // Position of the winning alpha vector
}

// LifecycleHooks defines callbacks for runtime observability.
type LifecycleHooks struct {
	OnBeliefUpdate   func(context.Context, *BeliefEvent)
	OnActionSelected func(context.Context, *ActionEvent)
}
