package entity

import "errors"

var ErrGarageIsRequired = errors.New("mechanic must belong to a garage")

// Mechanic is owned by exactly one garage. Ownership is what the
// assign-mechanic guard checks.
type Mechanic struct {
	id             string
	garageID       string
	fullName       string
	phoneNumber    string
	specialisation string
}

func NewMechanic(id, garageID, fullName, phoneNumber, specialisation string) (*Mechanic, error) {
	m := &Mechanic{
		id:             id,
		garageID:       garageID,
		fullName:       fullName,
		phoneNumber:    phoneNumber,
		specialisation: specialisation,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func RestoreMechanic(id, garageID, fullName, phoneNumber, specialisation string) *Mechanic {
	return &Mechanic{
		id:             id,
		garageID:       garageID,
		fullName:       fullName,
		phoneNumber:    phoneNumber,
		specialisation: specialisation,
	}
}

// UpdateDetails replaces the mutable fields. Ownership never changes; a
// mechanic moves garages by being re-registered.
func (m *Mechanic) UpdateDetails(fullName, phoneNumber, specialisation string) error {
	if fullName == "" {
		return ErrNameIsRequired
	}
	if phoneNumber == "" {
		return ErrPhoneIsRequired
	}
	m.fullName = fullName
	m.phoneNumber = phoneNumber
	m.specialisation = specialisation
	return nil
}

func (m *Mechanic) Validate() error {
	if m.id == "" {
		return ErrIDIsRequired
	}
	if m.garageID == "" {
		return ErrGarageIsRequired
	}
	if m.fullName == "" {
		return ErrNameIsRequired
	}
	if m.phoneNumber == "" {
		return ErrPhoneIsRequired
	}
	return nil
}

func (m *Mechanic) ID() string             { return m.id }
func (m *Mechanic) GarageID() string       { return m.garageID }
func (m *Mechanic) FullName() string       { return m.fullName }
func (m *Mechanic) PhoneNumber() string    { return m.phoneNumber }
func (m *Mechanic) Specialisation() string { return m.specialisation }
