package registry

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type DeleteMechanicUseCaseImpl struct {
	Mechanics outbound.MechanicRepository
	Logger    logger.Logger
}

func NewDeleteMechanicUseCase(mechanics outbound.MechanicRepository, log logger.Logger) *DeleteMechanicUseCaseImpl {
	return &DeleteMechanicUseCaseImpl{Mechanics: mechanics, Logger: log}
}

func (uc *DeleteMechanicUseCaseImpl) Execute(ctx context.Context, input DeleteMechanicInput) error {
	mechanic, err := uc.Mechanics.FindByID(ctx, input.MechanicID)
	if err != nil {
		return fmt.Errorf("load mechanic: %w", err)
	}
	if !input.Caller.ActsForGarage(mechanic.GarageID()) {
		return entity.ErrCapabilityDenied
	}

	if err := uc.Mechanics.Delete(ctx, mechanic.ID()); err != nil {
		return fmt.Errorf("delete mechanic: %w", err)
	}

	uc.Logger.Info(ctx, "mechanic removed",
		logger.String("mechanic_id", mechanic.ID()),
		logger.String("garage_id", mechanic.GarageID()),
	)
	return nil
}
