package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// The API only serves GET and POST; sessions travel in a cookie, so no Authorization header is accepted
const (
	corsAllowedMethods = "GET, POST, OPTIONS"
	corsAllowedHeaders = "Content-Type, X-Request-ID"
	corsMaxAge         = "3600"
)

// CORSMiddleware lets the frontend origins call the API with the session cookie.
// Because credentials are allowed, "*" in allowedOrigins echoes the caller's origin instead of sending a literal wildcard.
// OPTIONS requests are answered here with 204.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if origin := matchOrigin(r.Header.Get("Origin"), allowedOrigins); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}
			h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			h.Set("Access-Control-Max-Age", corsMaxAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matchOrigin returns origin when it may receive credentialed responses, "" otherwise
func matchOrigin(origin string, allowedOrigins []string) string {
	if origin == "" {
		return ""
	}
	if slices.Contains(allowedOrigins, "*") || slices.ContainsFunc(allowedOrigins, func(allowed string) bool {
		return strings.EqualFold(origin, allowed)
	}) {
		return origin
	}
	return ""
}
