package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roadassist/dispatch/internal/application/usecase/registry"
	"github.com/roadassist/dispatch/internal/domain/entity"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Should map not found to 404", entity.ErrNotFound, http.StatusNotFound},
		{"Should map invalid credentials to 401", entity.ErrInvalidCredentials, http.StatusUnauthorized},
		{"Should map unapproved garage to 403", entity.ErrGarageNotApproved, http.StatusForbidden},
		{"Should map capability denial to 403", entity.ErrCapabilityDenied, http.StatusForbidden},
		{"Should map missing password to 400", entity.ErrPasswordIsRequired, http.StatusBadRequest},
		{"Should map already assigned to 409", entity.ErrAlreadyAssigned, http.StatusConflict},
		{"Should map status conflict to 409", entity.ErrStatusConflict, http.StatusConflict},
		{"Should map ownership mismatch to 409", entity.ErrOwnershipMismatch, http.StatusConflict},
		{"Should map settled approval to 409", entity.ErrApprovalSettled, http.StatusConflict},
		{"Should map duplicate TIN to 409", entity.ErrDuplicateIdentity, http.StatusConflict},
		{"Should map invalid transition to 409",
			&entity.InvalidTransitionError{State: "completed", Event: "reject"}, http.StatusConflict},
		{"Should map invalid location to 400", entity.ErrInvalidLocation, http.StatusBadRequest},
		{"Should map missing car issue to 400", entity.ErrCarIssueIsRequired, http.StatusBadRequest},
		{"Should map missing certificate to 400", registry.ErrCertificateRequired, http.StatusBadRequest},
		{"Should hide unknown errors behind 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			respondError(recorder, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		})
	}
}

func TestRespondError_InternalDetailIsNotLeaked(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondError(recorder, errors.New("dsn=user:password@host"))

	assert.NotContains(t, recorder.Body.String(), "password")
	assert.Contains(t, recorder.Body.String(), "internal server error")
}
