package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/internal/domain/geo"
	"github.com/roadassist/dispatch/pkg/events"
	"github.com/roadassist/dispatch/pkg/logger"
)

const geocodeTimeout = 2 * time.Second

type SubmitUseCaseImpl struct {
	Requests        outbound.RequestRepository
	Garages         outbound.GarageRepository
	Index           outbound.GarageIndex
	Geocoder        outbound.Geocoder
	EventDispatcher events.EventDispatcher
	Logger          logger.Logger
	CandidateLimit  int
}

func NewSubmitUseCase(
	requests outbound.RequestRepository,
	garages outbound.GarageRepository,
	index outbound.GarageIndex,
	geocoder outbound.Geocoder,
	dispatcher events.EventDispatcher,
	log logger.Logger,
	candidateLimit int,
) *SubmitUseCaseImpl {
	return &SubmitUseCaseImpl{
		Requests:        requests,
		Garages:         garages,
		Index:           index,
		Geocoder:        geocoder,
		EventDispatcher: dispatcher,
		Logger:          log,
		CandidateLimit:  candidateLimit,
	}
}

func (uc *SubmitUseCaseImpl) Execute(ctx context.Context, input SubmitInput) (SubmitOutput, error) {
	location, err := entity.NewLocation(input.Location.Coordinates, input.Location.Address)
	if err != nil {
		return SubmitOutput{}, err
	}
	location = location.WithAddress(uc.resolveAddress(ctx, location))

	request, err := entity.NewServiceRequest(
		uuid.New().String(),
		input.CarIssue,
		input.CarModel,
		input.Contact,
		input.Requester,
		location,
		time.Now().UTC(),
	)
	if err != nil {
		return SubmitOutput{}, err
	}

	if err := uc.Requests.Save(ctx, request); err != nil {
		return SubmitOutput{}, err
	}

	candidates := uc.candidates(ctx, location)
	ranked := geo.Rank(location, candidates)

	uc.publish(ctx, events.RequestCreated, requestOutput(request))

	return SubmitOutput{
		Request:        requestOutput(request),
		NearestGarages: rankedOutput(ranked),
	}, nil
}

// resolveAddress is best effort: a geocoder failure yields the fallback
// address, never an error for the caller.
func (uc *SubmitUseCaseImpl) resolveAddress(ctx context.Context, location entity.Location) string {
	if location.Address() != "" {
		return location.Address()
	}

	geoCtx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	address, err := uc.Geocoder.ReverseGeocode(geoCtx, location.Latitude(), location.Longitude())
	if err != nil || address == "" {
		if err != nil {
			uc.Logger.Warn(ctx, "reverse geocode failed, using fallback address",
				logger.WithError(err),
			)
		}
		return entity.UnknownAddress
	}
	return address
}

// candidates prefers the geo index and degrades to a full approved scan
// when the index misses, errors, or fills its result up to the limit. A
// full result can mean truncation, and the ranked list must not silently
// lose approved garages. Approval is re-checked on the loaded garages
// either way.
func (uc *SubmitUseCaseImpl) candidates(ctx context.Context, origin entity.Location) []*entity.Garage {
	var garages []*entity.Garage

	ids, err := uc.Index.Nearest(ctx, origin, uc.CandidateLimit)
	if err != nil {
		uc.Logger.Warn(ctx, "garage index lookup failed, falling back to full scan",
			logger.WithError(err),
		)
	}
	if err == nil && len(ids) >= uc.CandidateLimit {
		uc.Logger.Debug(ctx, "garage index result at capacity, falling back to full scan",
			logger.Int("limit", uc.CandidateLimit),
		)
		ids = nil
	}
	if err == nil && len(ids) > 0 {
		garages, err = uc.Garages.FindByIDs(ctx, ids)
		if err != nil {
			uc.Logger.Warn(ctx, "garage load by ids failed, falling back to full scan",
				logger.WithError(err),
			)
			garages = nil
		}
	}

	if len(garages) == 0 {
		garages, err = uc.Garages.FindApproved(ctx)
		if err != nil {
			uc.Logger.Error(ctx, "approved garage scan failed", logger.WithError(err))
			return nil
		}
	}

	eligible := garages[:0]
	for _, g := range garages {
		if g.IsApproved() {
			eligible = append(eligible, g)
		}
	}
	return eligible
}

func (uc *SubmitUseCaseImpl) publish(ctx context.Context, name string, payload interface{}) {
	event := events.NewBaseEvent(name)
	event.SetPayload(payload)
	if err := uc.EventDispatcher.Dispatch(ctx, event); err != nil {
		uc.Logger.Warn(ctx, "event publish failed",
			logger.String("event", name),
			logger.WithError(err),
		)
	}
}
