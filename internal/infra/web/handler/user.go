package handler

import (
	"net/http"

	"github.com/roadassist/dispatch/internal/application/usecase/registry"
)

type UserHandler struct {
	register registry.RegisterUserUseCase
	login    registry.UserLoginUseCase
}

func NewUserHandler(register registry.RegisterUserUseCase, login registry.UserLoginUseCase) *UserHandler {
	return &UserHandler{register: register, login: login}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registry.RegisterUserInput
	if !decodeBody(w, r, &input) {
		return
	}

	output, err := h.register.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, output)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input registry.UserLoginInput
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
