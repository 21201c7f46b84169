package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a support inquiry sent through the public contact form.
type ContactMessage struct {
	id        string
	name      string
	email     string
	message   string
	createdAt time.Time
}

func NewContactMessage(name, email, message string) (*ContactMessage, error) {
	m := &ContactMessage{
		id:        uuid.New().String(),
		name:      name,
		email:     email,
		message:   message,
		createdAt: time.Now(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func RestoreContactMessage(id, name, email, message string, createdAt time.Time) *ContactMessage {
	return &ContactMessage{
		id:        id,
		name:      name,
		email:     email,
		message:   message,
		createdAt: createdAt,
	}
}

func (m *ContactMessage) Validate() error {
	if m.id == "" {
		return ErrIDIsRequired
	}
	if m.name == "" || m.email == "" || m.message == "" {
		return ErrContactFieldsRequired
	}
	return nil
}

func (m *ContactMessage) ID() string           { return m.id }
func (m *ContactMessage) Name() string         { return m.name }
func (m *ContactMessage) Email() string        { return m.email }
func (m *ContactMessage) Message() string      { return m.message }
func (m *ContactMessage) CreatedAt() time.Time { return m.createdAt }
