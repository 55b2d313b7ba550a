package middleware

import (
	"net/http"
)

// MaxRequestSize is the default body limit for API requests (1MB)
const MaxRequestSize = 1 << 20

// RequestSizeLimitMiddleware rejects bodies declared larger than maxRequestSize with 413,
// and caps the reader for bodies of unknown length so JSON decoding in handlers fails past the limit.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "cuerpo de la solicitud demasiado grande")
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
