package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestRequest(t *testing.T) *ServiceRequest {
	t.Helper()
	loc, err := NewLocation([]float64{30.0, -1.95}, "Kigali")
	assert.Nil(t, err)

	request, err := NewServiceRequest("r-1", "flat tyre", "Toyota Corolla", "+250788000222", "u-1", loc, time.Now())
	assert.Nil(t, err)
	return request
}

func approvedGarage(t *testing.T, id string) *Garage {
	t.Helper()
	garage := newTestGarage(t)
	assert.Nil(t, garage.Approve())
	return RestoreGarage(id, garage.Name(), garage.TINNumber(), garage.Phone(), garage.PasswordHash(), garage.CertificationURL(), garage.Location(), ApprovalApproved)
}

func TestNewServiceRequest(t *testing.T) {
	request := newTestRequest(t)

	assert.Equal(t, StatusPending, request.StatusName())
	assert.Equal(t, "u-1", request.Requester())
	assert.Empty(t, request.AssignedGarage())
	assert.Nil(t, request.AssignedAt())
	assert.False(t, request.IsTerminal())
}

func TestNewServiceRequest_ValidationErrors(t *testing.T) {
	loc, _ := NewLocation([]float64{30.0, -1.95}, "")

	tests := []struct {
		name        string
		id          string
		carIssue    string
		carModel    string
		contact     string
		expectedErr error
	}{
		{"Should return error when ID is empty", "", "flat tyre", "Corolla", "0788", ErrIDIsRequired},
		{"Should return error when car issue is empty", "r-1", "", "Corolla", "0788", ErrCarIssueIsRequired},
		{"Should return error when car model is empty", "r-1", "flat tyre", "", "0788", ErrCarModelIsRequired},
		{"Should return error when contact is empty", "r-1", "flat tyre", "Corolla", "", ErrContactIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := NewServiceRequest(tt.id, tt.carIssue, tt.carModel, tt.contact, "", loc, time.Now())

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, request)
		})
	}
}

func TestServiceRequest_HappyPath(t *testing.T) {
	//Arrange
	request := newTestRequest(t)
	garage := approvedGarage(t, "g-1")
	mechanic := RestoreMechanic("m-1", "g-1", "Jean Bosco", "+250788000333", "electrics")
	now := time.Now()

	//Act / Assert
	assert.Nil(t, request.AssignGarage(garage, now))
	assert.Equal(t, StatusAssigned, request.StatusName())
	assert.Equal(t, "g-1", request.AssignedGarage())
	assert.NotNil(t, request.AssignedAt())

	assert.Nil(t, request.AssignMechanic(mechanic, now))
	assert.Equal(t, StatusMechanicAssigned, request.StatusName())
	assert.Equal(t, "m-1", request.AssignedMechanic())

	assert.Nil(t, request.Complete())
	assert.Equal(t, StatusCompleted, request.StatusName())
	assert.True(t, request.IsTerminal())
}

func TestServiceRequest_UnapprovedGarageCannotClaim(t *testing.T) {
	request := newTestRequest(t)
	garage := newTestGarage(t)

	err := request.AssignGarage(garage, time.Now())

	assert.ErrorIs(t, err, ErrGarageNotApproved)
	assert.Equal(t, StatusPending, request.StatusName())
	assert.Empty(t, request.AssignedGarage())
}

func TestServiceRequest_MechanicMustBelongToAssignedGarage(t *testing.T) {
	request := newTestRequest(t)
	assert.Nil(t, request.AssignGarage(approvedGarage(t, "g-1"), time.Now()))

	outsider := RestoreMechanic("m-9", "g-other", "Someone Else", "+250788000444", "")

	err := request.AssignMechanic(outsider, time.Now())

	assert.ErrorIs(t, err, ErrOwnershipMismatch)
	assert.Equal(t, StatusAssigned, request.StatusName())
	assert.Empty(t, request.AssignedMechanic())
}

func TestServiceRequest_RejectClearsAssignment(t *testing.T) {
	request := newTestRequest(t)
	assert.Nil(t, request.AssignGarage(approvedGarage(t, "g-1"), time.Now()))

	assert.Nil(t, request.Reject())

	assert.Equal(t, StatusRejected, request.StatusName())
	assert.Empty(t, request.AssignedGarage())
	assert.Nil(t, request.AssignedAt())
	assert.True(t, request.IsTerminal())
}

func TestServiceRequest_InvalidTransitions(t *testing.T) {
	garage := approvedGarage(t, "g-1")
	mechanic := RestoreMechanic("m-1", "g-1", "Jean Bosco", "+250788000333", "")
	now := time.Now()

	completed := func() *ServiceRequest {
		r := newTestRequest(t)
		assert.Nil(t, r.AssignGarage(garage, now))
		assert.Nil(t, r.AssignMechanic(mechanic, now))
		assert.Nil(t, r.Complete())
		return r
	}

	tests := []struct {
		name string
		run  func() error
	}{
		{"Should refuse assign-mechanic while pending", func() error {
			return newTestRequest(t).AssignMechanic(mechanic, now)
		}},
		{"Should refuse complete while pending", func() error {
			return newTestRequest(t).Complete()
		}},
		{"Should refuse a second garage claim", func() error {
			r := newTestRequest(t)
			assert.Nil(t, r.AssignGarage(garage, now))
			return r.AssignGarage(approvedGarage(t, "g-2"), now)
		}},
		{"Should refuse complete before a mechanic is assigned", func() error {
			r := newTestRequest(t)
			assert.Nil(t, r.AssignGarage(garage, now))
			return r.Complete()
		}},
		{"Should refuse reject after mechanic assignment", func() error {
			r := newTestRequest(t)
			assert.Nil(t, r.AssignGarage(garage, now))
			assert.Nil(t, r.AssignMechanic(mechanic, now))
			return r.Reject()
		}},
		{"Should refuse reject after completion", func() error {
			return completed().Reject()
		}},
		{"Should refuse garage claim after completion", func() error {
			return completed().AssignGarage(garage, now)
		}},
		{"Should refuse any event after rejection", func() error {
			r := newTestRequest(t)
			assert.Nil(t, r.Reject())
			return r.AssignGarage(garage, now)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()

			assert.ErrorIs(t, err, ErrInvalidStateTransition)

			var transitionErr *InvalidTransitionError
			assert.ErrorAs(t, err, &transitionErr)
			assert.NotEmpty(t, transitionErr.State)
			assert.NotEmpty(t, transitionErr.Event)
		})
	}
}

func TestServiceRequest_RejectAfterCompleteLeavesStateUntouched(t *testing.T) {
	request := newTestRequest(t)
	assert.Nil(t, request.AssignGarage(approvedGarage(t, "g-1"), time.Now()))
	assert.Nil(t, request.AssignMechanic(RestoreMechanic("m-1", "g-1", "Jean Bosco", "+250788000333", ""), time.Now()))
	assert.Nil(t, request.Complete())

	err := request.Reject()

	assert.ErrorIs(t, err, ErrInvalidStateTransition)
	assert.Equal(t, StatusCompleted, request.StatusName())
	assert.Equal(t, "g-1", request.AssignedGarage())
	assert.Equal(t, "m-1", request.AssignedMechanic())
}

func TestRestoreServiceRequest(t *testing.T) {
	loc, _ := NewLocation([]float64{30.0, -1.95}, "Kigali")
	now := time.Now()

	request, err := RestoreServiceRequest("r-1", "flat tyre", "Corolla", "0788", "u-1", loc, StatusAssigned, "g-1", "", &now, now)

	assert.Nil(t, err)
	assert.Equal(t, StatusAssigned, request.StatusName())

	_, err = RestoreServiceRequest("r-2", "flat tyre", "Corolla", "0788", "", loc, "garbage", "", "", nil, now)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}
