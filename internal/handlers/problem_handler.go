package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/services"
	"github.com/inclulearn/backend/internal/session"
	"go.uber.org/zap"
)

// ProblemSolver is the interface that wraps the problem solver.
type ProblemSolver interface {
	// Method Solve returns a step-by-step explanation for "statement".
	//
	// "accountID" is empty for callers without a session. For authenticated callers the
	// submission is stored and the account's solved counter is incremented.
	// If the session account no longer exists, an unauthorized error is returned and nothing is stored.
	Solve(ctx context.Context, accountID, statement string) (string, error)
}

// ProblemHandler handles HTTP requests for the problem solver
type ProblemHandler struct {
	BaseHandler
	solver ProblemSolver
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(solver ProblemSolver, logger *zap.Logger) *ProblemHandler {
	return &ProblemHandler{
		BaseHandler: BaseHandler{Logger: logger},
		solver:      solver,
	}
}

// RegisterRoutes registers all problem handler routes
// Note: This assumes the router is already scoped to /api
func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Post("/resolver-problema", h.Solve)
}

type solutionResponse struct {
	Solution string `json:"solucion"`
}

// Solve handles POST /resolver-problema
// @Summary Solve problem
// @Description Get a step-by-step explanation for a problem statement. Authenticated calls are stored in the account history.
// @Tags problems
// @Accept json
// @Produce json
// @Param request body models.SolveProblemRequest true "Problem statement"
// @Success 200 {object} map[string]string "Solution"
// @Failure 400 {object} map[string]string "Missing statement"
// @Failure 401 {object} map[string]string "Session account no longer exists"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resolver-problema [post]
func (h *ProblemHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req models.SolveProblemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
		return
	}

	var accountID string
	if identity, ok := session.IdentityFromContext(r.Context()); ok {
		accountID = identity.UserID
	}

	solution, err := h.solver.Solve(r.Context(), accountID, req.Problem)
	if err != nil {
		if errors.Is(err, services.ErrValidation) || errors.Is(err, services.ErrUnauthorized) || errors.Is(err, services.ErrStorage) {
			h.RespondServiceError(w, err)
			return
		}
		h.Logger.Error("failed to solve problem", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Error al procesar el problema")
		return
	}

	h.RespondJSON(w, http.StatusOK, solutionResponse{Solution: solution})
}
