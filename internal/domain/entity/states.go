package entity

import "time"

const (
	StatusPending          = "pending"
	StatusAssigned         = "assigned"
	StatusMechanicAssigned = "mechanic_assigned"
	StatusCompleted        = "completed"
	StatusRejected         = "rejected"
)

type PendingState struct{}

func (s *PendingState) Name() string { return StatusPending }

func (s *PendingState) AssignGarage(r *ServiceRequest, g *Garage, at time.Time) error {
	if !g.IsApproved() {
		return ErrGarageNotApproved
	}
	r.assignedGarage = g.ID()
	r.assignedAt = &at
	r.TransitionTo(&AssignedState{})
	return nil
}

func (s *PendingState) AssignMechanic(r *ServiceRequest, m *Mechanic, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignMechanic)
}

func (s *PendingState) Complete(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventComplete)
}

func (s *PendingState) Reject(r *ServiceRequest) error {
	r.clearAssignment()
	r.TransitionTo(&RejectedState{})
	return nil
}

type AssignedState struct{}

func (s *AssignedState) Name() string { return StatusAssigned }

func (s *AssignedState) AssignGarage(r *ServiceRequest, g *Garage, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignGarage)
}

func (s *AssignedState) AssignMechanic(r *ServiceRequest, m *Mechanic, at time.Time) error {
	if m.GarageID() != r.assignedGarage {
		return ErrOwnershipMismatch
	}
	r.assignedMechanic = m.ID()
	r.assignedAt = &at
	r.TransitionTo(&MechanicAssignedState{})
	return nil
}

func (s *AssignedState) Complete(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventComplete)
}

func (s *AssignedState) Reject(r *ServiceRequest) error {
	r.clearAssignment()
	r.TransitionTo(&RejectedState{})
	return nil
}

type MechanicAssignedState struct{}

func (s *MechanicAssignedState) Name() string { return StatusMechanicAssigned }

func (s *MechanicAssignedState) AssignGarage(r *ServiceRequest, g *Garage, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignGarage)
}

func (s *MechanicAssignedState) AssignMechanic(r *ServiceRequest, m *Mechanic, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignMechanic)
}

func (s *MechanicAssignedState) Complete(r *ServiceRequest) error {
	r.TransitionTo(&CompletedState{})
	return nil
}

func (s *MechanicAssignedState) Reject(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventReject)
}

type CompletedState struct{}

func (s *CompletedState) Name() string { return StatusCompleted }

func (s *CompletedState) AssignGarage(r *ServiceRequest, g *Garage, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignGarage)
}
func (s *CompletedState) AssignMechanic(r *ServiceRequest, m *Mechanic, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignMechanic)
}
func (s *CompletedState) Complete(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventComplete)
}
func (s *CompletedState) Reject(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventReject)
}

type RejectedState struct{}

func (s *RejectedState) Name() string { return StatusRejected }

func (s *RejectedState) AssignGarage(r *ServiceRequest, g *Garage, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignGarage)
}
func (s *RejectedState) AssignMechanic(r *ServiceRequest, m *Mechanic, at time.Time) error {
	return invalidTransition(s.Name(), EventAssignMechanic)
}
func (s *RejectedState) Complete(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventComplete)
}
func (s *RejectedState) Reject(r *ServiceRequest) error {
	return invalidTransition(s.Name(), EventReject)
}
