package handlers

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inclulearn/backend/internal/models"
	"github.com/inclulearn/backend/internal/services"
	"github.com/inclulearn/backend/internal/session"
	"go.uber.org/zap"
)

// AccountService is the interface that wraps methods for account business logic.
type AccountService interface {
	// Method Register validates the request and creates a new account with default preferences.
	//
	// "req" parameter contains name, email and password, all required.
	// If a field is missing, the email is malformed or already registered, a validation error is returned together with "nil" value.
	Register(ctx context.Context, req models.RegisterRequest) (*models.Account, error)
	// Method Login verifies the credentials and returns the matching account.
	//
	// An unknown email and a wrong password both return the same unauthorized error.
	Login(ctx context.Context, req models.LoginRequest) (*models.Account, error)
	// Method Profile returns the account identified by "id".
	//
	// If the account no longer exists, an unauthorized error is returned.
	Profile(ctx context.Context, id string) (*models.Account, error)
	// Method UpdatePreferences merges the provided fields into the stored preferences and returns the result.
	UpdatePreferences(ctx context.Context, id string, req models.UpdatePreferencesRequest) (*models.Preferences, error)
	// Method Recommendations returns the suggested next steps together with the account's progress counters.
	Recommendations(ctx context.Context, id string) (*models.RecommendationsResponse, error)
}

// SessionStarter issues and ends session cookies.
type SessionStarter interface {
	// Method Start issues a session for the account and sets the session cookie on "w".
	Start(w http.ResponseWriter, userID, email string) (*session.Identity, error)
	// Method End revokes the session carried by "r", if any, and clears the cookie.
	End(w http.ResponseWriter, r *http.Request)
}

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	BaseHandler
	accounts AccountService
	sessions SessionStarter
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts AccountService, sessions SessionStarter, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler: BaseHandler{Logger: logger},
		accounts:    accounts,
		sessions:    sessions,
	}
}

// RegisterRoutes registers all account handler routes
// Note: This assumes the router is already scoped to /api
func (h *AccountHandler) RegisterRoutes(r chi.Router, requireSession func(http.Handler) http.Handler) {
	r.Post("/registro", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/user-data", h.UserData)

	r.Group(func(r chi.Router) {
		r.Use(requireSession)
		r.Post("/guardar-preferencias", h.SavePreferences)
		r.Get("/recomendaciones", h.Recommendations)
	})
}

// Register handles POST /registro
// @Summary Register a new account
// @Description Register with name, email and password sent as JSON or form fields. Starts a session cookie on success.
// @Tags accounts
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "Missing fields or account already exists"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /registro [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if isJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			h.RespondError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}
	} else {
		req.Name = r.FormValue("nombre")
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	account, err := h.accounts.Register(r.Context(), req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.startSession(w, account, "Usuario registrado exitosamente")
}

// Login handles POST /login
// @Summary Login
// @Description Login with email and password sent as JSON or form fields. Starts a session cookie on success.
// @Tags accounts
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /login [post]
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if isJSON(r) {
		if err := decodeJSON(r, &req); err != nil {
			h.RespondError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
			return
		}
	} else {
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	}

	account, err := h.accounts.Login(r.Context(), req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.startSession(w, account, "Login exitoso")
}

// Logout handles POST /logout
// @Summary Logout
// @Description Revoke the current session and clear the session cookie
// @Tags accounts
// @Produce json
// @Success 200 {object} map[string]string "Session closed"
// @Router /logout [post]
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(w, r)
	h.RespondJSON(w, http.StatusOK, messageResponse{Message: "Sesión cerrada correctamente"})
}

// UserData handles GET /user-data
// @Summary Current user
// @Description Get the name, email and preferences of the session account, or logged_in=false without a session
// @Tags accounts
// @Produce json
// @Success 200 {object} models.UserDataResponse
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /user-data [get]
func (h *AccountHandler) UserData(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.IdentityFromContext(r.Context())
	if !ok {
		h.RespondJSON(w, http.StatusOK, models.UserDataResponse{LoggedIn: false})
		return
	}

	account, err := h.accounts.Profile(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			h.RespondJSON(w, http.StatusOK, models.UserDataResponse{LoggedIn: false})
			return
		}
		h.RespondServiceError(w, err)
		return
	}

	preferences := account.Preferences
	h.RespondJSON(w, http.StatusOK, models.UserDataResponse{
		LoggedIn:    true,
		Name:        account.Name,
		Email:       account.Email,
		Preferences: &preferences,
	})
}

// SavePreferences handles POST /guardar-preferencias
// @Summary Save accessibility preferences
// @Description Update high contrast, font size and voice reader preferences. Omitted fields keep their value.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} map[string]string "Preferences saved"
// @Failure 400 {object} map[string]string "Invalid request body or font size out of range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /guardar-preferencias [post]
func (h *AccountHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	identity, _ := session.IdentityFromContext(r.Context())

	var req models.UpdatePreferencesRequest
	if err := decodeJSON(r, &req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Cuerpo de solicitud inválido")
		return
	}

	if _, err := h.accounts.UpdatePreferences(r.Context(), identity.UserID, req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, messageResponse{Message: "Preferencias guardadas correctamente"})
}

// Recommendations handles GET /recomendaciones
// @Summary Recommendations
// @Description Get suggested next steps together with the account's progress counters
// @Tags accounts
// @Produce json
// @Success 200 {object} models.RecommendationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /recomendaciones [get]
func (h *AccountHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	identity, _ := session.IdentityFromContext(r.Context())

	recommendations, err := h.accounts.Recommendations(r.Context(), identity.UserID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, recommendations)
}

// startSession sets the session cookie for account and writes the auth response
func (h *AccountHandler) startSession(w http.ResponseWriter, account *models.Account, message string) {
	if _, err := h.sessions.Start(w, account.ID, account.Email); err != nil {
		h.Logger.Error("failed to start session", zap.String("user_id", account.ID), zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.AuthResponse{
		Message: message,
		UserID:  account.ID,
		Name:    account.Name,
	})
}

// isJSON reports whether the request body is declared as JSON
func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
