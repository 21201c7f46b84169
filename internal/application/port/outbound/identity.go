package outbound

import "context"

// Roles carried in the session token and checked once per operation.
const (
	RoleUser   = "user"
	RoleGarage = "garage"
	RoleAdmin  = "admin"
)

// Caller is the authenticated principal an operation runs on behalf of,
// as resolved from the session token.
type Caller struct {
	Subject string
	Role    string
}

func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

// ActsForGarage reports whether the caller may act for the given garage:
// admins always, a garage session only for itself.
func (c Caller) ActsForGarage(garageID string) bool {
	if c.IsAdmin() {
		return true
	}
	return c.Role == RoleGarage && garageID != "" && c.Subject == garageID
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

type TokenIssuer interface {
	Issue(subject, role string) (string, error)
}

// CertificateStore receives the registration certificate once and returns a
// URL. Irrelevant to dispatch beyond the stored pointer.
type CertificateStore interface {
	Upload(ctx context.Context, filename string, content []byte) (string, error)
}
