package handler

import (
	"net/http"

	"loja-api/internal/model"
	"loja-api/internal/service"

	"github.com/rs/zerolog"
)

// UserHandler handles registration and login.
type UserHandler struct {
	service service.UserService
	logger  zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger.With().Str("handler", "user").Logger(),
	}
}

// Register handles POST /usuarios/cadastro.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to register user", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.UserCreatedResponse{
		Message: "Usuário criado com sucesso",
		User:    *user,
	})
}

// Login handles POST /usuarios/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, "failed to log in", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		Message: "Autenticado com sucesso",
		Token:   token,
	})
}
