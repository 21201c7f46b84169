package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
)

type GarageLoginUseCaseImpl struct {
	Garages outbound.GarageRepository
	Hasher  outbound.PasswordHasher
	Tokens  outbound.TokenIssuer
}

func NewGarageLoginUseCase(garages outbound.GarageRepository, hasher outbound.PasswordHasher, tokens outbound.TokenIssuer) *GarageLoginUseCaseImpl {
	return &GarageLoginUseCaseImpl{Garages: garages, Hasher: hasher, Tokens: tokens}
}

func (uc *GarageLoginUseCaseImpl) Execute(ctx context.Context, input GarageLoginInput) (GarageLoginOutput, error) {
	garage, err := uc.Garages.FindByTIN(ctx, input.TINNumber)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return GarageLoginOutput{}, entity.ErrNotFound
		}
		return GarageLoginOutput{}, fmt.Errorf("tin lookup: %w", err)
	}

	if !uc.Hasher.Verify(input.Password, garage.PasswordHash()) {
		return GarageLoginOutput{}, entity.ErrInvalidCredentials
	}

	// Credentials alone are not enough: an unapproved garage cannot act.
	if !garage.IsApproved() {
		return GarageLoginOutput{}, entity.ErrGarageNotApproved
	}

	token, err := uc.Tokens.Issue(garage.ID(), outbound.RoleGarage)
	if err != nil {
		return GarageLoginOutput{}, fmt.Errorf("issue token: %w", err)
	}

	return GarageLoginOutput{
		ID:    garage.ID(),
		Name:  garage.Name(),
		Token: token,
	}, nil
}
