package outbound

import (
	"context"
	"time"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type RequestRepository interface {
	Save(ctx context.Context, request *entity.ServiceRequest) error
	FindByID(ctx context.Context, id string) (*entity.ServiceRequest, error)

	// UpdateStatus persists a lifecycle transition as a single conditional
	// write: it only applies when the stored status is still one of
	// expected. Returns entity.ErrStatusConflict when the document exists
	// but another writer moved it first, entity.ErrNotFound when absent.
	UpdateStatus(ctx context.Context, request *entity.ServiceRequest, expected ...string) error

	ListByGarage(ctx context.Context, garageID string) ([]*entity.ServiceRequest, error)

	// DeleteStaleAssigned removes requests that have sat in the assigned
	// state since before cutoff. The status filter keeps the sweep from
	// racing an in-flight mechanic assignment.
	DeleteStaleAssigned(ctx context.Context, cutoff time.Time) (int64, error)
}
