package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
	"github.com/roadassist/dispatch/internal/application/usecase/approval"
	"github.com/roadassist/dispatch/internal/application/usecase/registry"
	"github.com/roadassist/dispatch/internal/infra/web/middleware"
)

type GarageHandler struct {
	registerGarage   registry.RegisterGarageUseCase
	registerMechanic registry.RegisterMechanicUseCase
	updateMechanic   registry.UpdateMechanicUseCase
	deleteMechanic   registry.DeleteMechanicUseCase
	login            registry.GarageLoginUseCase
	roster           approval.RosterUseCase
	resubmit         approval.ResubmitGarageUseCase
}

func NewGarageHandler(
	registerGarage registry.RegisterGarageUseCase,
	registerMechanic registry.RegisterMechanicUseCase,
	updateMechanic registry.UpdateMechanicUseCase,
	deleteMechanic registry.DeleteMechanicUseCase,
	login registry.GarageLoginUseCase,
	roster approval.RosterUseCase,
	resubmit approval.ResubmitGarageUseCase,
) *GarageHandler {
	return &GarageHandler{
		registerGarage:   registerGarage,
		registerMechanic: registerMechanic,
		updateMechanic:   updateMechanic,
		deleteMechanic:   deleteMechanic,
		login:            login,
		roster:           roster,
		resubmit:         resubmit,
	}
}

func (h *GarageHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registry.RegisterGarageInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.registerGarage.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output)
}

func (h *GarageHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input registry.GarageLoginInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.login.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

func (h *GarageHandler) RegisterMechanic(w http.ResponseWriter, r *http.Request) {
	var input registry.RegisterMechanicInput
	if !decodeBody(w, r, &input) {
		return
	}

	if !garageScoped(r, input.GarageID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "garage mismatch"})
		return
	}

	output, err := h.registerMechanic.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output)
}

// UpdateMechanic and DeleteMechanic are owner-scoped: the use case loads
// the mechanic and checks the caller against its garage.

func (h *GarageHandler) UpdateMechanic(w http.ResponseWriter, r *http.Request) {
	var input registry.UpdateMechanicInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.MechanicID = chi.URLParam(r, "id")
	input.Caller = sessionCaller(r)

	output, err := h.updateMechanic.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

func (h *GarageHandler) DeleteMechanic(w http.ResponseWriter, r *http.Request) {
	err := h.deleteMechanic.Execute(r.Context(), registry.DeleteMechanicInput{
		MechanicID: chi.URLParam(r, "id"),
		Caller:     sessionCaller(r),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *GarageHandler) Roster(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if !garageScoped(r, garageID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "garage mismatch"})
		return
	}

	output, err := h.roster.Execute(r.Context(), garageID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, output)
}

// Resubmit puts a rejected garage back in the review queue.
func (h *GarageHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	garageID := chi.URLParam(r, "id")
	if !garageScoped(r, garageID) {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "garage mismatch"})
		return
	}

	if err := h.resubmit.Execute(r.Context(), garageID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "pending"})
}

// sessionCaller converts the session claims into the caller identity the
// use cases check capabilities against.
func sessionCaller(r *http.Request) outbound.Caller {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		return outbound.Caller{}
	}
	return outbound.Caller{Subject: claims.Subject, Role: claims.Role}
}

// garageScoped is the capability rule for garage-scoped routes: admins pass,
// a garage session must match the garage it acts for.
func garageScoped(r *http.Request, garageID string) bool {
	return sessionCaller(r).ActsForGarage(garageID)
}
