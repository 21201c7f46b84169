package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roadassist/dispatch/internal/application/usecase/approval"
)

type AdminHandler struct {
	approve approval.ApproveGarageUseCase
	reject  approval.RejectGarageUseCase
	stats   approval.StatsUseCase
}

func NewAdminHandler(
	approve approval.ApproveGarageUseCase,
	reject approval.RejectGarageUseCase,
	stats approval.StatsUseCase,
) *AdminHandler {
	return &AdminHandler{approve: approve, reject: reject, stats: stats}
}

func (h *AdminHandler) ApproveGarage(w http.ResponseWriter, r *http.Request) {
	if err := h.approve.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}

func (h *AdminHandler) RejectGarage(w http.ResponseWriter, r *http.Request) {
	if err := h.reject.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "rejected"})
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.stats.Execute(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, counts)
}
