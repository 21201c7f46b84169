package events

import (
	"context"
	"time"
)

type Event interface {
	GetName() string
	GetDateTime() time.Time
	GetPayload() interface{}
	SetPayload(payload interface{})
}

// EventDispatcher publishes lifecycle events. Publication is fire and
// forget relative to the state transition that produced the event.
type EventDispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}
