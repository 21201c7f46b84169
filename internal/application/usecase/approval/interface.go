package approval

import (
	"context"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
)

type ApproveGarageUseCase interface {
	Execute(ctx context.Context, garageID string) error
}

type RejectGarageUseCase interface {
	Execute(ctx context.Context, garageID string) error
}

type ResubmitGarageUseCase interface {
	Execute(ctx context.Context, garageID string) error
}

type RosterUseCase interface {
	Execute(ctx context.Context, garageID string) ([]MechanicOutput, error)
}

type StatsUseCase interface {
	Execute(ctx context.Context) (outbound.GarageCounts, error)
}
