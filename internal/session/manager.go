package session

import (
	"context"
	"net/http"
	"time"

	"github.com/inclulearn/backend/internal/models"
	"go.uber.org/zap"
)

// CookieName is the name of the session cookie
const CookieName = "session"

type contextKey string

const identityKey contextKey = "sessionIdentity"

// Manager binds sessions to HTTP cookies
type Manager struct {
	tokens       *TokenGenerator
	revoker      Revoker
	cookieSecure bool
	logger       *zap.Logger
}

// NewManager creates a new session manager
func NewManager(tokens *TokenGenerator, revoker Revoker, cookieSecure bool, logger *zap.Logger) *Manager {
	return &Manager{
		tokens:       tokens,
		revoker:      revoker,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Start issues a session for the account and sets the cookie on w
func (m *Manager) Start(w http.ResponseWriter, userID, email string) (*Identity, error) {
	token, identity, err := m.tokens.Issue(userID, email)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  identity.ExpiresAt,
		MaxAge:   int(m.tokens.TTL().Seconds()),
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return identity, nil
}

// End revokes the session carried by r, if any, and clears the cookie.
// It always succeeds from the caller's point of view.
func (m *Manager) End(w http.ResponseWriter, r *http.Request) {
	if identity, ok := IdentityFromContext(r.Context()); ok {
		ttl := time.Until(identity.ExpiresAt)
		if err := m.revoker.Revoke(r.Context(), identity.TokenID, ttl); err != nil {
			m.logger.Warn("failed to revoke session", zap.Error(err), zap.String("user_id", identity.UserID))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware attaches the session identity to the request context when the
// cookie holds a valid, unrevoked token. Requests without one pass through as anonymous.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := m.tokens.Validate(cookie.Value)
		if err != nil {
			m.logger.Debug("ignoring invalid session cookie", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		revoked, err := m.revoker.IsRevoked(r.Context(), identity.TokenID)
		if err != nil {
			// Revocation store unavailable: the signed token is still trusted until it expires.
			m.logger.Warn("failed to check session revocation", zap.Error(err))
		}
		if revoked {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// RequireSession rejects requests without a session identity with 401
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"No autorizado"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithIdentity returns a copy of ctx carrying identity
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext retrieves the session identity from context
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// UserIDOrAnonymous returns the session user id, or the shared anonymous id when there is no session
func UserIDOrAnonymous(ctx context.Context) string {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.UserID
	}
	return models.AnonymousUserID
}
