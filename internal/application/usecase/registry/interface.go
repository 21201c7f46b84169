package registry

import "context"

type RegisterGarageUseCase interface {
	Execute(ctx context.Context, input RegisterGarageInput) (RegisterGarageOutput, error)
}

type RegisterMechanicUseCase interface {
	Execute(ctx context.Context, input RegisterMechanicInput) (RegisterMechanicOutput, error)
}

type GarageLoginUseCase interface {
	Execute(ctx context.Context, input GarageLoginInput) (GarageLoginOutput, error)
}

type RegisterUserUseCase interface {
	Execute(ctx context.Context, input RegisterUserInput) (UserOutput, error)
}

type UserLoginUseCase interface {
	Execute(ctx context.Context, input UserLoginInput) (UserOutput, error)
}

type UpdateMechanicUseCase interface {
	Execute(ctx context.Context, input UpdateMechanicInput) (MechanicOutput, error)
}

type DeleteMechanicUseCase interface {
	Execute(ctx context.Context, input DeleteMechanicInput) error
}
