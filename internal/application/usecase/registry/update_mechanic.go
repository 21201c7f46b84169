package registry

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type UpdateMechanicUseCaseImpl struct {
	Mechanics outbound.MechanicRepository
	Logger    logger.Logger
}

func NewUpdateMechanicUseCase(mechanics outbound.MechanicRepository, log logger.Logger) *UpdateMechanicUseCaseImpl {
	return &UpdateMechanicUseCaseImpl{Mechanics: mechanics, Logger: log}
}

func (uc *UpdateMechanicUseCaseImpl) Execute(ctx context.Context, input UpdateMechanicInput) (MechanicOutput, error) {
	mechanic, err := uc.Mechanics.FindByID(ctx, input.MechanicID)
	if err != nil {
		return MechanicOutput{}, fmt.Errorf("load mechanic: %w", err)
	}
	if !input.Caller.ActsForGarage(mechanic.GarageID()) {
		return MechanicOutput{}, entity.ErrCapabilityDenied
	}

	if err := mechanic.UpdateDetails(input.FullName, input.PhoneNumber, input.Specialisation); err != nil {
		return MechanicOutput{}, err
	}

	if err := uc.Mechanics.Update(ctx, mechanic); err != nil {
		return MechanicOutput{}, fmt.Errorf("update mechanic: %w", err)
	}

	return MechanicOutput{
		ID:             mechanic.ID(),
		GarageID:       mechanic.GarageID(),
		FullName:       mechanic.FullName(),
		PhoneNumber:    mechanic.PhoneNumber(),
		Specialisation: mechanic.Specialisation(),
	}, nil
}
