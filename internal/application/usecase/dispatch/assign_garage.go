package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/events"
	"github.com/roadassist/dispatch/pkg/logger"
)

type AssignGarageUseCaseImpl struct {
	Requests        outbound.RequestRepository
	Garages         outbound.GarageRepository
	EventDispatcher events.EventDispatcher
	Logger          logger.Logger
}

func NewAssignGarageUseCase(
	requests outbound.RequestRepository,
	garages outbound.GarageRepository,
	dispatcher events.EventDispatcher,
	log logger.Logger,
) *AssignGarageUseCaseImpl {
	return &AssignGarageUseCaseImpl{
		Requests:        requests,
		Garages:         garages,
		EventDispatcher: dispatcher,
		Logger:          log,
	}
}

func (uc *AssignGarageUseCaseImpl) Execute(ctx context.Context, input AssignGarageInput) (RequestOutput, error) {
	request, err := uc.Requests.FindByID(ctx, input.RequestID)
	if err != nil {
		return RequestOutput{}, fmt.Errorf("load request: %w", err)
	}

	garage, err := uc.Garages.FindByID(ctx, input.GarageID)
	if err != nil {
		return RequestOutput{}, fmt.Errorf("load garage: %w", err)
	}

	from := request.StatusName()
	if err := request.AssignGarage(garage, time.Now().UTC()); err != nil {
		return RequestOutput{}, err
	}

	// The conditional write is the serialization point for racing claims.
	if err := uc.Requests.UpdateStatus(ctx, request, from); err != nil {
		if errors.Is(err, entity.ErrStatusConflict) {
			return RequestOutput{}, entity.ErrAlreadyAssigned
		}
		return RequestOutput{}, fmt.Errorf("persist assignment: %w", err)
	}

	uc.publish(ctx, events.RequestAssigned, requestOutput(request))

	return requestOutput(request), nil
}

func (uc *AssignGarageUseCaseImpl) publish(ctx context.Context, name string, payload interface{}) {
	event := events.NewBaseEvent(name)
	event.SetPayload(payload)
	if err := uc.EventDispatcher.Dispatch(ctx, event); err != nil {
		uc.Logger.Warn(ctx, "event publish failed",
			logger.String("event", name),
			logger.WithError(err),
		)
	}
}
