package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/application/usecase/dispatch"
	"github.com/roadassist/dispatch/pkg/logger"
)

type RequestHandler struct {
	submit         dispatch.SubmitUseCase
	assignGarage   dispatch.AssignGarageUseCase
	assignMechanic dispatch.AssignMechanicUseCase
	complete       dispatch.CompleteUseCase
	reject         dispatch.RejectUseCase
	listForGarage  dispatch.ListForGarageUseCase
	logger         logger.Logger
}

func NewRequestHandler(
	submit dispatch.SubmitUseCase,
	assignGarage dispatch.AssignGarageUseCase,
	assignMechanic dispatch.AssignMechanicUseCase,
	complete dispatch.CompleteUseCase,
	reject dispatch.RejectUseCase,
	listForGarage dispatch.ListForGarageUseCase,
	log logger.Logger,
) *RequestHandler {
	return &RequestHandler{
		submit:         submit,
		assignGarage:   assignGarage,
		assignMechanic: assignMechanic,
		complete:       complete,
		reject:         reject,
		listForGarage:  listForGarage,
		logger:         log,
	}
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input dispatch.SubmitInput
	if !decodeBody(w, r, &input) {
		return
	}

	// An authenticated user becomes the requester; anonymous submissions
	// stay anonymous.
	if caller := sessionCaller(r); caller.Role == outbound.RoleUser {
		input.Requester = caller.Subject
	}

	output, err := h.submit.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output)
}

func (h *RequestHandler) AssignGarage(w http.ResponseWriter, r *http.Request) {
	var input dispatch.AssignGarageInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.RequestID = chi.URLParam(r, "id")

	if !garageScoped(r, input.GarageID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "garage mismatch"})
		return
	}

	output, err := h.assignGarage.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

func (h *RequestHandler) AssignMechanic(w http.ResponseWriter, r *http.Request) {
	var input dispatch.AssignMechanicInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.RequestID = chi.URLParam(r, "id")
	input.Caller = sessionCaller(r)

	output, err := h.assignMechanic.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	output, err := h.complete.Execute(r.Context(), dispatch.CompleteInput{
		RequestID: chi.URLParam(r, "id"),
		Caller:    sessionCaller(r),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	output, err := h.reject.Execute(r.Context(), dispatch.RejectInput{
		RequestID: chi.URLParam(r, "id"),
		Caller:    sessionCaller(r),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

func (h *RequestHandler) ListForGarage(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if !garageScoped(r, garageID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "garage mismatch"})
		return
	}

	output, err := h.listForGarage.Execute(r.Context(), garageID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}
