package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports service liveness and the active storage backend
type HealthHandler struct {
	BaseHandler
	storage string
	pinger  Pinger
}

// NewHealthHandler creates a new health handler.
// pinger may be nil when the storage backend has nothing to ping.
func NewHealthHandler(storage string, pinger Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		storage:     storage,
		pinger:      pinger,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.Health)
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// Health handles GET /healthz
// @Summary Health check
// @Description Report liveness and the storage backend in use
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Service healthy"
// @Failure 503 {object} map[string]string "Storage unreachable"
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.pinger.PingContext(ctx); err != nil {
			h.Logger.Warn("storage ping failed", zap.String("storage", h.storage), zap.Error(err))
			h.RespondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Storage: h.storage})
			return
		}
	}

	h.RespondJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: h.storage})
}
