package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/events"
	"github.com/roadassist/dispatch/pkg/logger"
)

type AssignMechanicUseCaseImpl struct {
	Requests        outbound.RequestRepository
	Mechanics       outbound.MechanicRepository
	EventDispatcher events.EventDispatcher
	Logger          logger.Logger
}

func NewAssignMechanicUseCase(
	requests outbound.RequestRepository,
	mechanics outbound.MechanicRepository,
	dispatcher events.EventDispatcher,
	log logger.Logger,
) *AssignMechanicUseCaseImpl {
	return &AssignMechanicUseCaseImpl{
		Requests:        requests,
		Mechanics:       mechanics,
		EventDispatcher: dispatcher,
		Logger:          log,
	}
}

func (uc *AssignMechanicUseCaseImpl) Execute(ctx context.Context, input AssignMechanicInput) (RequestOutput, error) {
	request, err := uc.Requests.FindByID(ctx, input.RequestID)
	if err != nil {
		return RequestOutput{}, fmt.Errorf("load request: %w", err)
	}
	if !garageMayManage(input.Caller, request) {
		return RequestOutput{}, entity.ErrCapabilityDenied
	}

	mechanic, err := uc.Mechanics.FindByID(ctx, input.MechanicID)
	if err != nil {
		return RequestOutput{}, fmt.Errorf("load mechanic: %w", err)
	}

	from := request.StatusName()
	if err := request.AssignMechanic(mechanic, time.Now().UTC()); err != nil {
		return RequestOutput{}, err
	}

	if err := uc.Requests.UpdateStatus(ctx, request, from); err != nil {
		return RequestOutput{}, fmt.Errorf("persist mechanic assignment: %w", err)
	}

	event := events.NewBaseEvent(events.RequestMechanicAssigned)
	event.SetPayload(requestOutput(request))
	if err := uc.EventDispatcher.Dispatch(ctx, event); err != nil {
		uc.Logger.Warn(ctx, "event publish failed",
			logger.String("event", events.RequestMechanicAssigned),
			logger.WithError(err),
		)
	}

	return requestOutput(request), nil
}
