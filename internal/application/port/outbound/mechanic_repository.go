package outbound

import (
	"context"

	"github.com/roadassist/dispatch/internal/domain/entity"
)

type MechanicRepository interface {
	Save(ctx context.Context, mechanic *entity.Mechanic) error
	FindByID(ctx context.Context, id string) (*entity.Mechanic, error)
	FindByGarage(ctx context.Context, garageID string) ([]*entity.Mechanic, error)
	Update(ctx context.Context, mechanic *entity.Mechanic) error
	Delete(ctx context.Context, id string) error
}
