package handler

import (
	"net/http"

	"github.com/roadassist/dispatch/internal/application/usecase/support"
)

type ContactHandler struct {
	send support.SendContactUseCase
}

func NewContactHandler(send support.SendContactUseCase) *ContactHandler {
	return &ContactHandler{send: send}
}

func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input support.ContactInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.send.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output)
}
