package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/domain/entity"
	"github.com/roadassist/dispatch/pkg/events"
	"github.com/roadassist/dispatch/pkg/logger"
)

func asGarage(id string) outbound.Caller {
	return outbound.Caller{Subject: id, Role: outbound.RoleGarage}
}

func asUser(id string) outbound.Caller {
	return outbound.Caller{Subject: id, Role: outbound.RoleUser}
}

func asAdmin(id string) outbound.Caller {
	return outbound.Caller{Subject: id, Role: outbound.RoleAdmin}
}

type lifecycleFixture struct {
	requests   *memRequestRepo
	dispatcher *memDispatcher

	assignGarage   *AssignGarageUseCaseImpl
	assignMechanic *AssignMechanicUseCaseImpl
	complete       *CompleteUseCaseImpl
	reject         *RejectUseCaseImpl
	list           *ListForGarageUseCaseImpl
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	requests := newMemRequestRepo()
	seedPendingRequestFrom(t, requests, "r-1", "u-7")

	garages := newMemGarageRepo(testGarage(t, "g-1", 30.01, -1.95, entity.ApprovalApproved))
	mechanics := newMemMechanicRepo(
		entity.RestoreMechanic("m-1", "g-1", "Jean Bosco", "+250788000333", "electrics"),
		entity.RestoreMechanic("m-9", "g-other", "Someone Else", "+250788000444", ""),
	)
	dispatcher := &memDispatcher{}
	log := logger.NewNop()

	return &lifecycleFixture{
		requests:       requests,
		dispatcher:     dispatcher,
		assignGarage:   NewAssignGarageUseCase(requests, garages, dispatcher, log),
		assignMechanic: NewAssignMechanicUseCase(requests, mechanics, dispatcher, log),
		complete:       NewCompleteUseCase(requests, dispatcher, log),
		reject:         NewRejectUseCase(requests, dispatcher, log),
		list:           NewListForGarageUseCase(requests),
	}
}

func (f *lifecycleFixture) claim(t *testing.T) {
	t.Helper()
	_, err := f.assignGarage.Execute(context.Background(), AssignGarageInput{RequestID: "r-1", GarageID: "g-1"})
	assert.Nil(t, err)
}

func (f *lifecycleFixture) assignMech(t *testing.T) {
	t.Helper()
	_, err := f.assignMechanic.Execute(context.Background(), AssignMechanicInput{
		RequestID: "r-1", MechanicID: "m-1", Caller: asGarage("g-1"),
	})
	assert.Nil(t, err)
}

func TestAssignMechanic(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	output, err := f.assignMechanic.Execute(context.Background(), AssignMechanicInput{
		RequestID: "r-1", MechanicID: "m-1", Caller: asGarage("g-1"),
	})

	assert.Nil(t, err)
	assert.Equal(t, entity.StatusMechanicAssigned, output.Status)
	assert.Equal(t, "m-1", output.AssignedMechanic)
	assert.Equal(t, entity.StatusMechanicAssigned, f.requests.status("r-1"))
	assert.Contains(t, f.dispatcher.names(), events.RequestMechanicAssigned)
}

func TestAssignMechanic_OwnershipMismatch(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	_, err := f.assignMechanic.Execute(context.Background(), AssignMechanicInput{
		RequestID: "r-1", MechanicID: "m-9", Caller: asGarage("g-1"),
	})

	assert.ErrorIs(t, err, entity.ErrOwnershipMismatch)
	assert.Equal(t, entity.StatusAssigned, f.requests.status("r-1"))
}

func TestAssignMechanic_ByAnotherGarageRefused(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	_, err := f.assignMechanic.Execute(context.Background(), AssignMechanicInput{
		RequestID: "r-1", MechanicID: "m-1", Caller: asGarage("g-intruder"),
	})

	assert.ErrorIs(t, err, entity.ErrCapabilityDenied)
	assert.Equal(t, entity.StatusAssigned, f.requests.status("r-1"))
}

func TestAssignMechanic_RequiresGarageFirst(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.assignMechanic.Execute(context.Background(), AssignMechanicInput{
		RequestID: "r-1", MechanicID: "m-1", Caller: asGarage("g-1"),
	})

	assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
}

func TestComplete(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)
	f.assignMech(t)

	output, err := f.complete.Execute(context.Background(), CompleteInput{RequestID: "r-1", Caller: asGarage("g-1")})

	assert.Nil(t, err)
	assert.Equal(t, entity.StatusCompleted, output.Status)
	assert.Equal(t, entity.StatusCompleted, f.requests.status("r-1"))
	assert.Contains(t, f.dispatcher.names(), events.RequestCompleted)
}

func TestComplete_ByAnotherGarageRefused(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)
	f.assignMech(t)

	_, err := f.complete.Execute(context.Background(), CompleteInput{RequestID: "r-1", Caller: asGarage("g-intruder")})

	assert.ErrorIs(t, err, entity.ErrCapabilityDenied)
	assert.Equal(t, entity.StatusMechanicAssigned, f.requests.status("r-1"))
}

func TestComplete_ByAdminAllowed(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)
	f.assignMech(t)

	output, err := f.complete.Execute(context.Background(), CompleteInput{RequestID: "r-1", Caller: asAdmin("ops")})

	assert.Nil(t, err)
	assert.Equal(t, entity.StatusCompleted, output.Status)
}

func TestComplete_BeforeMechanicAssigned(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	_, err := f.complete.Execute(context.Background(), CompleteInput{RequestID: "r-1", Caller: asGarage("g-1")})

	assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
	assert.Equal(t, entity.StatusAssigned, f.requests.status("r-1"))
}

func TestReject_FromPending(t *testing.T) {
	f := newLifecycleFixture(t)

	output, err := f.reject.Execute(context.Background(), RejectInput{RequestID: "r-1", Caller: asGarage("g-1")})

	assert.Nil(t, err)
	assert.Equal(t, entity.StatusRejected, output.Status)
	assert.Contains(t, f.dispatcher.names(), events.RequestRejected)
}

func TestReject_FromAssignedClearsAssignment(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	output, err := f.reject.Execute(context.Background(), RejectInput{RequestID: "r-1", Caller: asGarage("g-1")})

	assert.Nil(t, err)
	assert.Equal(t, entity.StatusRejected, output.Status)
	assert.Empty(t, output.AssignedGarage)
	assert.Nil(t, output.AssignedAt)
}

func TestReject_ByRequesterCancels(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	output, err := f.reject.Execute(context.Background(), RejectInput{RequestID: "r-1", Caller: asUser("u-7")})

	assert.Nil(t, err)
	assert.Equal(t, entity.StatusRejected, output.Status)
}

func TestReject_ByDifferentUserRefused(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.reject.Execute(context.Background(), RejectInput{RequestID: "r-1", Caller: asUser("u-99")})

	assert.ErrorIs(t, err, entity.ErrCapabilityDenied)
	assert.Equal(t, entity.StatusPending, f.requests.status("r-1"))
}

func TestReject_ByAnotherGarageAfterClaimRefused(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)

	_, err := f.reject.Execute(context.Background(), RejectInput{RequestID: "r-1", Caller: asGarage("g-intruder")})

	assert.ErrorIs(t, err, entity.ErrCapabilityDenied)
	assert.Equal(t, entity.StatusAssigned, f.requests.status("r-1"))
}

func TestReject_AfterCompleteRefusedAndStateUntouched(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)
	f.assignMech(t)
	_, err := f.complete.Execute(context.Background(), CompleteInput{RequestID: "r-1", Caller: asGarage("g-1")})
	assert.Nil(t, err)

	_, err = f.reject.Execute(context.Background(), RejectInput{RequestID: "r-1", Caller: asGarage("g-1")})

	assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
	assert.Equal(t, entity.StatusCompleted, f.requests.status("r-1"))
}

func TestListForGarage(t *testing.T) {
	f := newLifecycleFixture(t)
	f.claim(t)
	seedPendingRequest(t, f.requests, "r-2")

	listed, err := f.list.Execute(context.Background(), "g-1")

	assert.Nil(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, "r-1", listed[0].ID)

	empty, err := f.list.Execute(context.Background(), "g-none")
	assert.Nil(t, err)
	assert.Empty(t, empty)
}
