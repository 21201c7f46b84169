package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/logger"
)

type RegisterUserUseCaseImpl struct {
	Users  outbound.UserRepository
	Hasher outbound.PasswordHasher
	Tokens outbound.TokenIssuer
	Logger logger.Logger
}

func NewRegisterUserUseCase(
	users outbound.UserRepository,
	hasher outbound.PasswordHasher,
	tokens outbound.TokenIssuer,
	log logger.Logger,
) *RegisterUserUseCaseImpl {
	return &RegisterUserUseCaseImpl{Users: users, Hasher: hasher, Tokens: tokens, Logger: log}
}

func (uc *RegisterUserUseCaseImpl) Execute(ctx context.Context, input RegisterUserInput) (UserOutput, error) {
	if input.Password == "" {
		return UserOutput{}, entity.ErrPasswordIsRequired
	}

	if _, err := uc.Users.FindByEmail(ctx, input.Email); err == nil {
		return UserOutput{}, entity.ErrDuplicateIdentity
	} else if !errors.Is(err, entity.ErrNotFound) {
		return UserOutput{}, fmt.Errorf("email lookup: %w", err)
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return UserOutput{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := entity.NewUser(
		uuid.New().String(),
		input.Names,
		input.Email,
		input.PhoneNumber,
		hash,
		input.Role,
	)
	if err != nil {
		return UserOutput{}, err
	}

	if err := uc.Users.Save(ctx, user); err != nil {
		return UserOutput{}, fmt.Errorf("save user: %w", err)
	}

	token, err := uc.Tokens.Issue(user.ID(), user.Role())
	if err != nil {
		return UserOutput{}, fmt.Errorf("issue token: %w", err)
	}

	uc.Logger.Info(ctx, "user registered",
		logger.String("user_id", user.ID()),
		logger.String("role", user.Role()),
	)

	return userOutput(user, token), nil
}

func userOutput(user *entity.User, token string) UserOutput {
	return UserOutput{
		ID:          user.ID(),
		Names:       user.Names(),
		Email:       user.Email(),
		PhoneNumber: user.PhoneNumber(),
		Role:        user.Role(),
		Token:       token,
	}
}
