package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"loja-api/internal/auth"
	"loja-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful to tell the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeMessage writes a {"mensagem": ...} response.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeServiceError maps a service error to its status and payload.
// Domain errors carry their message to the client; anything else is a 500
// with the generic fallback message.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	if errors.Is(err, model.ErrImageTooLarge) {
		logger.Warn().Err(err).Msg("upload rejected")
		writeJSON(w, http.StatusRequestEntityTooLarge, model.RouteErrorResponse{
			Error: model.RouteError{Message: model.ErrImageTooLarge.Message},
		})
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeNotFound:
			status = http.StatusNotFound
		case model.ErrCodeConflict:
			status = http.StatusConflict
		case model.ErrCodeAuthenticationFailed:
			status = http.StatusUnauthorized
		}
		logger.Debug().Str("code", domainErr.Code).Int("status", status).Msg(domainErr.Message)
		writeMessage(w, status, domainErr.Message)
		return
	}

	logger.Error().Err(err).Msg(fallback)
	writeError(w, http.StatusInternalServerError, fallback, logger)
}

// auditLog starts an info event for a completed write, tagged with the
// user the auth middleware attached to the request.
func auditLog(logger zerolog.Logger, r *http.Request) *zerolog.Event {
	event := logger.Info()
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		event = event.Int64("user_id", identity.UserID).Str("user_email", identity.Email)
	}
	return event
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// pathID parses a numeric path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return id, nil
}

// requestInfo builds the navigation hint attached to responses.
func requestInfo(method, description, url string) model.RequestInfo {
	return model.RequestInfo{
		Type:        method,
		Description: description,
		URL:         url,
	}
}
