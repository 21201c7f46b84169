package outbound

import (
	"context"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type GarageCounts struct {
	Total    int64
	Approved int64
	Pending  int64
}

type GarageRepository interface {
	Save(ctx context.Context, garage *entity.Garage) error
	FindByID(ctx context.Context, id string) (*entity.Garage, error)
	FindByTIN(ctx context.Context, tinNumber string) (*entity.Garage, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Garage, error)
	FindApproved(ctx context.Context) ([]*entity.Garage, error)

	// UpdateApprovalStatus writes the settled status. The durable write
	// happens before any dispatch read can observe the garage as eligible.
	UpdateApprovalStatus(ctx context.Context, id string, status entity.ApprovalStatus) error

	Counts(ctx context.Context) (GarageCounts, error)
}
