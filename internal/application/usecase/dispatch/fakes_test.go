package dispatch

import (
	"context"
	"sync"
	"time"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/events"
)

// memRequestRepo mimics the conditional-update contract of the Mongo
// repository: a transition only lands when the stored status still matches
// one of the expected values.
type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*storedRequest
}

type storedRequest struct {
	carIssue         string
	carModel         string
	contact          string
	requester        string
	location         entity.Location
	status           string
	assignedGarage   string
	assignedMechanic string
	assignedAt       *time.Time
	createdAt        time.Time
}

func newMemRequestRepo() *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*storedRequest)}
}

func (r *memRequestRepo) Save(ctx context.Context, request *entity.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID()] = fromEntity(request)
	return nil
}

func (r *memRequestRepo) FindByID(ctx context.Context, id string) (*entity.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.requests[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return toEntity(id, doc)
}

func (r *memRequestRepo) UpdateStatus(ctx context.Context, request *entity.ServiceRequest, expected ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.requests[request.ID()]
	if !ok {
		return entity.ErrNotFound
	}
	matched := false
	for _, status := range expected {
		if doc.status == status {
			matched = true
			break
		}
	}
	if !matched {
		return entity.ErrStatusConflict
	}
	r.requests[request.ID()] = fromEntity(request)
	return nil
}

func (r *memRequestRepo) ListByGarage(ctx context.Context, garageID string) ([]*entity.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ServiceRequest
	for id, doc := range r.requests {
		if doc.assignedGarage == garageID {
			request, err := toEntity(id, doc)
			if err != nil {
				return nil, err
			}
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *memRequestRepo) DeleteStaleAssigned(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, doc := range r.requests {
		if doc.status == entity.StatusAssigned && doc.assignedAt != nil && doc.assignedAt.Before(cutoff) {
			delete(r.requests, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memRequestRepo) status(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doc, ok := r.requests[id]; ok {
		return doc.status
	}
	return ""
}

func fromEntity(request *entity.ServiceRequest) *storedRequest {
	return &storedRequest{
		carIssue:         request.CarIssue(),
		carModel:         request.CarModel(),
		contact:          request.Contact(),
		requester:        request.Requester(),
		location:         request.Location(),
		status:           request.StatusName(),
		assignedGarage:   request.AssignedGarage(),
		assignedMechanic: request.AssignedMechanic(),
		assignedAt:       request.AssignedAt(),
		createdAt:        request.CreatedAt(),
	}
}

func toEntity(id string, doc *storedRequest) (*entity.ServiceRequest, error) {
	return entity.RestoreServiceRequest(id, doc.carIssue, doc.carModel, doc.contact, doc.requester,
		doc.location, doc.status, doc.assignedGarage, doc.assignedMechanic, doc.assignedAt, doc.createdAt)
}

type memGarageRepo struct {
	mu      sync.Mutex
	garages map[string]*entity.Garage
}

func newMemGarageRepo(garages ...*entity.Garage) *memGarageRepo {
	repo := &memGarageRepo{garages: make(map[string]*entity.Garage)}
	for _, g := range garages {
		repo.garages[g.ID()] = g
	}
	return repo
}

func (r *memGarageRepo) Save(ctx context.Context, garage *entity.Garage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.garages[garage.ID()] = garage
	return nil
}

func (r *memGarageRepo) FindByID(ctx context.Context, id string) (*entity.Garage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	garage, ok := r.garages[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return garage, nil
}

func (r *memGarageRepo) FindByTIN(ctx context.Context, tinNumber string) (*entity.Garage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.garages {
		if g.TINNumber() == tinNumber {
			return g, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memGarageRepo) FindByIDs(ctx context.Context, ids []string) ([]*entity.Garage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Garage
	for _, id := range ids {
		if g, ok := r.garages[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGarageRepo) FindApproved(ctx context.Context) ([]*entity.Garage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Garage
	for _, g := range r.garages {
		if g.IsApproved() {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGarageRepo) UpdateApprovalStatus(ctx context.Context, id string, status entity.ApprovalStatus) error {
	return nil
}

func (r *memGarageRepo) Counts(ctx context.Context) (outbound.GarageCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := outbound.GarageCounts{Total: int64(len(r.garages))}
	for _, g := range r.garages {
		switch g.ApprovalStatus() {
		case entity.ApprovalApproved:
			counts.Approved++
		case entity.ApprovalPending:
			counts.Pending++
		}
	}
	return counts, nil
}

type memMechanicRepo struct {
	mechanics map[string]*entity.Mechanic
}

func newMemMechanicRepo(mechanics ...*entity.Mechanic) *memMechanicRepo {
	repo := &memMechanicRepo{mechanics: make(map[string]*entity.Mechanic)}
	for _, m := range mechanics {
		repo.mechanics[m.ID()] = m
	}
	return repo
}

func (r *memMechanicRepo) Save(ctx context.Context, mechanic *entity.Mechanic) error {
	r.mechanics[mechanic.ID()] = mechanic
	return nil
}

func (r *memMechanicRepo) FindByID(ctx context.Context, id string) (*entity.Mechanic, error) {
	mechanic, ok := r.mechanics[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return mechanic, nil
}

func (r *memMechanicRepo) FindByGarage(ctx context.Context, garageID string) ([]*entity.Mechanic, error) {
	var out []*entity.Mechanic
	for _, m := range r.mechanics {
		if m.GarageID() == garageID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMechanicRepo) Update(ctx context.Context, mechanic *entity.Mechanic) error {
	if _, ok := r.mechanics[mechanic.ID()]; !ok {
		return entity.ErrNotFound
	}
	r.mechanics[mechanic.ID()] = mechanic
	return nil
}

func (r *memMechanicRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.mechanics[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.mechanics, id)
	return nil
}

type stubIndex struct {
	ids []string
	err error
}

func (s *stubIndex) Add(ctx context.Context, garageID string, location entity.Location) error {
	return nil
}
func (s *stubIndex) Remove(ctx context.Context, garageID string) error { return nil }
func (s *stubIndex) Nearest(ctx context.Context, origin entity.Location, limit int) ([]string, error) {
	return s.ids, s.err
}

type stubGeocoder struct {
	address string
	err     error
	calls   int
}

func (s *stubGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	s.calls++
	return s.address, s.err
}

type memDispatcher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (d *memDispatcher) Dispatch(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return d.err
	}
	d.events = append(d.events, event)
	return nil
}

func (d *memDispatcher) names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.events))
	for i, e := range d.events {
		out[i] = e.GetName()
	}
	return out
}
