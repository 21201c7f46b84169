package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type RegisterMechanicUseCaseImpl struct {
	Garages   outbound.GarageRepository
	Mechanics outbound.MechanicRepository
	Logger    logger.Logger
}

func NewRegisterMechanicUseCase(garages outbound.GarageRepository, mechanics outbound.MechanicRepository, log logger.Logger) *RegisterMechanicUseCaseImpl {
	return &RegisterMechanicUseCaseImpl{Garages: garages, Mechanics: mechanics, Logger: log}
}

func (uc *RegisterMechanicUseCaseImpl) Execute(ctx context.Context, input RegisterMechanicInput) (RegisterMechanicOutput, error) {
	garage, err := uc.Garages.FindByID(ctx, input.GarageID)
	if err != nil {
		return RegisterMechanicOutput{}, fmt.Errorf("load garage: %w", err)
	}
	if !garage.IsApproved() {
		return RegisterMechanicOutput{}, entity.ErrGarageNotApproved
	}

	mechanic, err := entity.NewMechanic(
		uuid.New().String(),
		garage.ID(),
		input.FullName,
		input.PhoneNumber,
		input.Specialisation,
	)
	if err != nil {
		return RegisterMechanicOutput{}, err
	}

	if err := uc.Mechanics.Save(ctx, mechanic); err != nil {
		return RegisterMechanicOutput{}, fmt.Errorf("save mechanic: %w", err)
	}

	uc.Logger.Info(ctx, "mechanic registered",
		logger.String("mechanic_id", mechanic.ID()),
		logger.String("garage_id", garage.ID()),
	)

	return RegisterMechanicOutput{
		ID:       mechanic.ID(),
		GarageID: mechanic.GarageID(),
		FullName: mechanic.FullName(),
	}, nil
}
