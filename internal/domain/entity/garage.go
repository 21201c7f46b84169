package entity

import "errors"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

var (
	ErrNameIsRequired  = errors.New("garage name is required")
	ErrTINIsRequired   = errors.New("garage tin number is required")
	ErrPhoneIsRequired = errors.New("phone number is required")
)

type Garage struct {
	id               string
	name             string
	tinNumber        string
	phone            string
	passwordHash     string
	certificationURL string
	location         Location
	approvalStatus   ApprovalStatus
}

func NewGarage(id, name, tinNumber, phone, passwordHash, certificationURL string, location Location) (*Garage, error) {
	g := &Garage{
		id:               id,
		name:             name,
		tinNumber:        tinNumber,
		phone:            phone,
		passwordHash:     passwordHash,
		certificationURL: certificationURL,
		location:         location,
		approvalStatus:   ApprovalPending,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// RestoreGarage rebuilds a garage from its stored representation without
// re-running registration validation.
func RestoreGarage(id, name, tinNumber, phone, passwordHash, certificationURL string, location Location, status ApprovalStatus) *Garage {
	return &Garage{
		id:               id,
		name:             name,
		tinNumber:        tinNumber,
		phone:            phone,
		passwordHash:     passwordHash,
		certificationURL: certificationURL,
		location:         location,
		approvalStatus:   status,
	}
}

func (g *Garage) Validate() error {
	if g.id == "" {
		return ErrIDIsRequired
	}
	if g.name == "" {
		return ErrNameIsRequired
	}
	if g.tinNumber == "" {
		return ErrTINIsRequired
	}
	if g.phone == "" {
		return ErrPhoneIsRequired
	}
	return g.location.Validate()
}

// Approve settles the approval status. Re-applying the current status is a
// no-op; flipping an already settled status is refused.
func (g *Garage) Approve() error {
	return g.settle(ApprovalApproved)
}

func (g *Garage) Reject() error {
	return g.settle(ApprovalRejected)
}

func (g *Garage) settle(target ApprovalStatus) error {
	if g.approvalStatus == target {
		return nil
	}
	if g.approvalStatus != ApprovalPending {
		return ErrApprovalSettled
	}
	g.approvalStatus = target
	return nil
}

// Resubmit returns a rejected garage to pending review. Only reachable when
// the operator enables resubmission.
func (g *Garage) Resubmit() error {
	if g.approvalStatus != ApprovalRejected {
		return ErrApprovalSettled
	}
	g.approvalStatus = ApprovalPending
	return nil
}

func (g *Garage) IsApproved() bool {
	return g.approvalStatus == ApprovalApproved
}

func (g *Garage) ID() string                     { return g.id }
func (g *Garage) Name() string                   { return g.name }
func (g *Garage) TINNumber() string              { return g.tinNumber }
func (g *Garage) Phone() string                  { return g.phone }
func (g *Garage) PasswordHash() string           { return g.passwordHash }
func (g *Garage) CertificationURL() string       { return g.certificationURL }
func (g *Garage) Location() Location             { return g.location }
func (g *Garage) ApprovalStatus() ApprovalStatus { return g.approvalStatus }
