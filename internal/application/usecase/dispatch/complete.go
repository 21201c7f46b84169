package dispatch

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/events"
	"github.com/roadassist/dispatch/pkg/logger"
)

type CompleteUseCaseImpl struct {
	Requests        outbound.RequestRepository
	EventDispatcher events.EventDispatcher
	Logger          logger.Logger
}

func NewCompleteUseCase(requests outbound.RequestRepository, dispatcher events.EventDispatcher, log logger.Logger) *CompleteUseCaseImpl {
	return &CompleteUseCaseImpl{Requests: requests, EventDispatcher: dispatcher, Logger: log}
}

func (uc *CompleteUseCaseImpl) Execute(ctx context.Context, input CompleteInput) (RequestOutput, error) {
	request, err := uc.Requests.FindByID(ctx, input.RequestID)
	if err != nil {
		return RequestOutput{}, fmt.Errorf("load request: %w", err)
	}
	if !garageMayManage(input.Caller, request) {
		return RequestOutput{}, entity.ErrCapabilityDenied
	}

	from := request.StatusName()
	if err := request.Complete(); err != nil {
		return RequestOutput{}, err
	}

	if err := uc.Requests.UpdateStatus(ctx, request, from); err != nil {
		return RequestOutput{}, fmt.Errorf("persist completion: %w", err)
	}

	event := events.NewBaseEvent(events.RequestCompleted)
	event.SetPayload(requestOutput(request))
	if err := uc.EventDispatcher.Dispatch(ctx, event); err != nil {
		uc.Logger.Warn(ctx, "event publish failed",
			logger.String("event", events.RequestCompleted),
			logger.WithError(err),
		)
	}

	return requestOutput(request), nil
}
