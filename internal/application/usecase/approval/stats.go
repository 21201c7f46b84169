package approval

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
)

type StatsUseCaseImpl struct {
	Garages outbound.GarageRepository
}

func NewStatsUseCase(garages outbound.GarageRepository) *StatsUseCaseImpl {
	return &StatsUseCaseImpl{Garages: garages}
}

func (uc *StatsUseCaseImpl) Execute(ctx context.Context) (outbound.GarageCounts, error) {
	counts, err := uc.Garages.Counts(ctx)
	if err != nil {
		return outbound.GarageCounts{}, fmt.Errorf("garage counts: %w", err)
	}
	return counts, nil
}
