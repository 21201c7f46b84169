package entity

import "errors"

var (
	ErrNamesAreRequired   = errors.New("names are required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
	ErrInvalidUserRole    = errors.New("user role must be user or admin")
)

const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

// User is a requester or operator account. Garages authenticate through
// their own registration; users carry the role that the admin surface
// checks.
type User struct {
	id           string
	names        string
	email        string
	phoneNumber  string
	passwordHash string
	role         string
}

func NewUser(id, names, email, phoneNumber, passwordHash, role string) (*User, error) {
	if role == "" {
		role = UserRoleUser
	}
	u := &User{
		id:           id,
		names:        names,
		email:        email,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		role:         role,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

func RestoreUser(id, names, email, phoneNumber, passwordHash, role string) *User {
	return &User{
		id:           id,
		names:        names,
		email:        email,
		phoneNumber:  phoneNumber,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) Validate() error {
	if u.id == "" {
		return ErrIDIsRequired
	}
	if u.names == "" {
		return ErrNamesAreRequired
	}
	if u.email == "" {
		return ErrEmailIsRequired
	}
	if u.passwordHash == "" {
		return ErrPasswordIsRequired
	}
	if u.role != UserRoleUser && u.role != UserRoleAdmin {
		return ErrInvalidUserRole
	}
	return nil
}

func (u *User) ID() string           { return u.id }
func (u *User) Names() string        { return u.names }
func (u *User) Email() string        { return u.email }
func (u *User) PhoneNumber() string  { return u.phoneNumber }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() string         { return u.role }
