package approval

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
)

type MechanicOutput struct {
	ID             string `json:"id"`
	GarageID       string `json:"garageId"`
	FullName       string `json:"fullName"`
	PhoneNumber    string `json:"phoneNumber"`
	Specialisation string `json:"specialisation"`
}

type RosterUseCaseImpl struct {
	Garages   outbound.GarageRepository
	Mechanics outbound.MechanicRepository
}

func NewRosterUseCase(garages outbound.GarageRepository, mechanics outbound.MechanicRepository) *RosterUseCaseImpl {
	return &RosterUseCaseImpl{Garages: garages, Mechanics: mechanics}
}

func (uc *RosterUseCaseImpl) Execute(ctx context.Context, garageID string) ([]MechanicOutput, error) {
	if _, err := uc.Garages.FindByID(ctx, garageID); err != nil {
		return nil, fmt.Errorf("load garage: %w", err)
	}

	mechanics, err := uc.Mechanics.FindByGarage(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	out := make([]MechanicOutput, len(mechanics))
	for i, m := range mechanics {
		out[i] = MechanicOutput{
			ID:             m.ID(),
			GarageID:       m.GarageID(),
			FullName:       m.FullName(),
			PhoneNumber:    m.PhoneNumber(),
			Specialisation: m.Specialisation(),
		}
	}
	return out, nil
}
