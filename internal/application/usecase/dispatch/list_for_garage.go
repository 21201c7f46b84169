package dispatch

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
)

type ListForGarageUseCaseImpl struct {
	Requests outbound.RequestRepository
}

func NewListForGarageUseCase(requests outbound.RequestRepository) *ListForGarageUseCaseImpl {
	return &ListForGarageUseCaseImpl{Requests: requests}
}

func (uc *ListForGarageUseCaseImpl) Execute(ctx context.Context, garageID string) ([]RequestOutput, error) {
	requests, err := uc.Requests.ListByGarage(ctx, garageID)
	if err != nil {
		return nil, fmt.Errorf("list requests for garage: %w", err)
	}

	out := make([]RequestOutput, len(requests))
	for i, r := range requests {
		out[i] = requestOutput(r)
	}
	return out, nil
}
