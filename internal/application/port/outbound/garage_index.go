package outbound

import (
	"context"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

// GarageIndex is the fast path for candidate lookup. Only approved garages
// are ever added. Ordering and exact distances come from the ranker, not
// the index, so a stale or unavailable index degrades to a full scan.
type GarageIndex interface {
	Add(ctx context.Context, garageID string, location entity.Location) error
	Remove(ctx context.Context, garageID string) error
	Nearest(ctx context.Context, origin entity.Location, limit int) ([]string, error)
}
