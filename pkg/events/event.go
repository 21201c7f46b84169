package events

import "time"

// Lifecycle event names published by the dispatch use cases.
const (
	RequestCreated          = "request.created"
	RequestAssigned         = "request.assigned"
	RequestMechanicAssigned = "request.mechanic_assigned"
	RequestCompleted        = "request.completed"
	RequestRejected         = "request.rejected"
)

type BaseEvent struct {
	name     string
	dateTime time.Time
	payload  interface{}
}

func NewBaseEvent(name string) *BaseEvent {
	return &BaseEvent{name: name, dateTime: time.Now()}
}

func (e *BaseEvent) GetName() string          { return e.name }
func (e *BaseEvent) GetDateTime() time.Time   { return e.dateTime }
func (e *BaseEvent) GetPayload() interface{}  { return e.payload }
func (e *BaseEvent) SetPayload(p interface{}) { e.payload = p }
