package entity

import "time"

// Event names used in InvalidTransitionError reports.
const (
	EventAssignGarage   = "assignGarage"
	EventAssignMechanic = "assignMechanic"
	EventComplete       = "complete"
	EventReject         = "reject"
)

type RequestState interface {
	Name() string
	AssignGarage(r *ServiceRequest, g *Garage, at time.Time) error
	AssignMechanic(r *ServiceRequest, m *Mechanic, at time.Time) error
	Complete(r *ServiceRequest) error
	Reject(r *ServiceRequest) error
}

// StateFromName maps a stored status back to its state implementation.
func StateFromName(name string) (RequestState, bool) {
	switch name {
	case StatusPending:
		return &PendingState{}, true
	case StatusAssigned:
		return &AssignedState{}, true
	case StatusMechanicAssigned:
		return &MechanicAssignedState{}, true
	case StatusCompleted:
		return &CompletedState{}, true
	case StatusRejected:
		return &RejectedState{}, true
	}
	return nil, false
}
