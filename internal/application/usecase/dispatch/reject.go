package dispatch

import (
	"context"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/events"
	"github.com/roadassist/dispatch/pkg/logger"
)

// RejectUseCaseImpl handles both a garage refusing a request and the
// original requester cancelling.
type RejectUseCaseImpl struct {
	Requests        outbound.RequestRepository
	EventDispatcher events.EventDispatcher
	Logger          logger.Logger
}

func NewRejectUseCase(requests outbound.RequestRepository, dispatcher events.EventDispatcher, log logger.Logger) *RejectUseCaseImpl {
	return &RejectUseCaseImpl{Requests: requests, EventDispatcher: dispatcher, Logger: log}
}

func (uc *RejectUseCaseImpl) Execute(ctx context.Context, input RejectInput) (RequestOutput, error) {
	request, err := uc.Requests.FindByID(ctx, input.RequestID)
	if err != nil {
		return RequestOutput{}, fmt.Errorf("load request: %w", err)
	}
	if !mayReject(input.Caller, request) {
		return RequestOutput{}, entity.ErrCapabilityDenied
	}

	from := request.StatusName()
	if err := request.Reject(); err != nil {
		return RequestOutput{}, err
	}

	if err := uc.Requests.UpdateStatus(ctx, request, from); err != nil {
		return RequestOutput{}, fmt.Errorf("persist rejection: %w", err)
	}

	event := events.NewBaseEvent(events.RequestRejected)
	event.SetPayload(requestOutput(request))
	if err := uc.EventDispatcher.Dispatch(ctx, event); err != nil {
		uc.Logger.Warn(ctx, "event publish failed",
			logger.String("event", events.RequestRejected),
			logger.WithError(err),
		)
	}

	return requestOutput(request), nil
}
