package entity

import (
	"errors"
	"time"
)

var (
	ErrCarIssueIsRequired = errors.New("car issue is required")
	ErrCarModelIsRequired = errors.New("car model is required")
	ErrContactIsRequired  = errors.New("contact is required")
)

// ServiceRequest is the dispatch aggregate. Status changes only happen
// through the state machine; repositories persist them with a conditional
// update keyed on the status the transition started from.
type ServiceRequest struct {
	id               string
	carIssue         string
	carModel         string
	contact          string
	requester        string
	location         Location
	state            RequestState
	assignedGarage   string
	assignedMechanic string
	assignedAt       *time.Time
	createdAt        time.Time
}

// NewServiceRequest creates a pending request. requester is the user id of
// an authenticated submitter and stays empty for anonymous submissions.
func NewServiceRequest(id, carIssue, carModel, contact, requester string, location Location, createdAt time.Time) (*ServiceRequest, error) {
	r := &ServiceRequest{
		id:        id,
		carIssue:  carIssue,
		carModel:  carModel,
		contact:   contact,
		requester: requester,
		location:  location,
		state:     &PendingState{},
		createdAt: createdAt,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreServiceRequest rebuilds a request from its stored representation.
func RestoreServiceRequest(id, carIssue, carModel, contact, requester string, location Location, status, assignedGarage, assignedMechanic string, assignedAt *time.Time, createdAt time.Time) (*ServiceRequest, error) {
	state, ok := StateFromName(status)
	if !ok {
		return nil, invalidTransition(status, "restore")
	}
	return &ServiceRequest{
		id:               id,
		carIssue:         carIssue,
		carModel:         carModel,
		contact:          contact,
		requester:        requester,
		location:         location,
		state:            state,
		assignedGarage:   assignedGarage,
		assignedMechanic: assignedMechanic,
		assignedAt:       assignedAt,
		createdAt:        createdAt,
	}, nil
}

func (r *ServiceRequest) Validate() error {
	if r.id == "" {
		return ErrIDIsRequired
	}
	if r.carIssue == "" {
		return ErrCarIssueIsRequired
	}
	if r.carModel == "" {
		return ErrCarModelIsRequired
	}
	if r.contact == "" {
		return ErrContactIsRequired
	}
	return r.location.Validate()
}

func (r *ServiceRequest) TransitionTo(state RequestState) {
	r.state = state
}

func (r *ServiceRequest) AssignGarage(g *Garage, at time.Time) error {
	return r.state.AssignGarage(r, g, at)
}

func (r *ServiceRequest) AssignMechanic(m *Mechanic, at time.Time) error {
	return r.state.AssignMechanic(r, m, at)
}

func (r *ServiceRequest) Complete() error {
	return r.state.Complete(r)
}

func (r *ServiceRequest) Reject() error {
	return r.state.Reject(r)
}

func (r *ServiceRequest) clearAssignment() {
	r.assignedGarage = ""
	r.assignedMechanic = ""
	r.assignedAt = nil
}

func (r *ServiceRequest) IsTerminal() bool {
	name := r.state.Name()
	return name == StatusCompleted || name == StatusRejected
}

func (r *ServiceRequest) SetAddress(address string) {
	r.location = r.location.WithAddress(address)
}

func (r *ServiceRequest) ID() string               { return r.id }
func (r *ServiceRequest) CarIssue() string         { return r.carIssue }
func (r *ServiceRequest) CarModel() string         { return r.carModel }
func (r *ServiceRequest) Contact() string          { return r.contact }
func (r *ServiceRequest) Requester() string        { return r.requester }
func (r *ServiceRequest) Location() Location       { return r.location }
func (r *ServiceRequest) StatusName() string       { return r.state.Name() }
func (r *ServiceRequest) AssignedGarage() string   { return r.assignedGarage }
func (r *ServiceRequest) AssignedMechanic() string { return r.assignedMechanic }
func (r *ServiceRequest) AssignedAt() *time.Time   { return r.assignedAt }
func (r *ServiceRequest) CreatedAt() time.Time     { return r.createdAt }
