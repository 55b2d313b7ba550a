package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inclulearn/backend/internal/services"
	"go.uber.org/zap"
)

const internalErrorMessage = "error interno del servidor"

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error to its HTTP status and sends it as {error}
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error) {
	status, message := h.classify(err)
	h.RespondError(w, status, message)
}

// respondStatusError sends a service error in the {status, message} envelope used by the progress endpoints.
// Not found keeps the {error} body shared by every endpoint.
func (h *BaseHandler) respondStatusError(w http.ResponseWriter, err error) {
	status, message := h.classify(err)
	if status == http.StatusNotFound {
		h.RespondError(w, status, message)
		return
	}
	h.RespondJSON(w, status, statusResponse{Status: "error", Message: message})
}

// classify returns the HTTP status and the client message for err
func (h *BaseHandler) classify(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrStorage):
		h.Logger.Error("storage failure", zap.Error(err))
		return http.StatusServiceUnavailable, err.Error()
	default:
		h.Logger.Error("unexpected service error", zap.Error(err))
		return http.StatusInternalServerError, internalErrorMessage
	}
}

// decodeJSON decodes the request body into v
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// messageResponse is the {mensaje} body returned by account and course actions
type messageResponse struct {
	Message string `json:"mensaje"`
}

// statusResponse is the {status, message} body returned by progress actions
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
