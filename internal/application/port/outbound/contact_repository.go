package outbound

import (
	"context"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type ContactRepository interface {
	Save(ctx context.Context, message *entity.ContactMessage) error
}
