package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roadassist/dispatch/internal/application/usecase/registry"
	"github.com/roadassist/dispatch/internal/domain/entity"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError translates domain errors into HTTP statuses. Anything not
// recognised is an internal error and the detail stays out of the response.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrGarageNotApproved),
		errors.Is(err, entity.ErrCapabilityDenied):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrAlreadyAssigned),
		errors.Is(err, entity.ErrStatusConflict),
		errors.Is(err, entity.ErrOwnershipMismatch),
		errors.Is(err, entity.ErrApprovalSettled),
		errors.Is(err, entity.ErrDuplicateIdentity),
		errors.Is(err, entity.ErrInvalidStateTransition):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, entity.ErrIDIsRequired),
		errors.Is(err, entity.ErrInvalidLocation),
		errors.Is(err, entity.ErrCarIssueIsRequired),
		errors.Is(err, entity.ErrCarModelIsRequired),
		errors.Is(err, entity.ErrContactIsRequired),
		errors.Is(err, entity.ErrNameIsRequired),
		errors.Is(err, entity.ErrTINIsRequired),
		errors.Is(err, entity.ErrPhoneIsRequired),
		errors.Is(err, entity.ErrGarageIsRequired),
		errors.Is(err, entity.ErrNamesAreRequired),
		errors.Is(err, entity.ErrEmailIsRequired),
		errors.Is(err, entity.ErrPasswordIsRequired),
		errors.Is(err, entity.ErrInvalidUserRole),
		errors.Is(err, entity.ErrContactFieldsRequired),
		errors.Is(err, registry.ErrCertificateRequired):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
