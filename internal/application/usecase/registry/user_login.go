package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
)

type UserLoginUseCaseImpl struct {
	Users  outbound.UserRepository
	Hasher outbound.PasswordHasher
	Tokens outbound.TokenIssuer
}

func NewUserLoginUseCase(users outbound.UserRepository, hasher outbound.PasswordHasher, tokens outbound.TokenIssuer) *UserLoginUseCaseImpl {
	return &UserLoginUseCaseImpl{Users: users, Hasher: hasher, Tokens: tokens}
}

func (uc *UserLoginUseCaseImpl) Execute(ctx context.Context, input UserLoginInput) (UserOutput, error) {
	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return UserOutput{}, entity.ErrNotFound
		}
		return UserOutput{}, fmt.Errorf("email lookup: %w", err)
	}

	if !uc.Hasher.Verify(input.Password, user.PasswordHash()) {
		return UserOutput{}, entity.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.ID(), user.Role())
	if err != nil {
		return UserOutput{}, fmt.Errorf("issue token: %w", err)
	}

	return userOutput(user, token), nil
}
