package dispatch

import (
	"context"
)

type SubmitUseCase interface {
	Execute(ctx context.Context, input SubmitInput) (SubmitOutput, error)
}

type AssignGarageUseCase interface {
	Execute(ctx context.Context, input AssignGarageInput) (RequestOutput, error)
}

type AssignMechanicUseCase interface {
	Execute(ctx context.Context, input AssignMechanicInput) (RequestOutput, error)
}

type CompleteUseCase interface {
	Execute(ctx context.Context, input CompleteInput) (RequestOutput, error)
}

type RejectUseCase interface {
	Execute(ctx context.Context, input RejectInput) (RequestOutput, error)
}

type ListForGarageUseCase interface {
	Execute(ctx context.Context, garageID string) ([]RequestOutput, error)
}
