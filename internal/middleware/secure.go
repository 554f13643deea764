package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// SecureHeaders sets conservative browser security headers on every response.
func SecureHeaders(next http.Handler) http.Handler {
	return chi.Chain(
		chimw.SetHeader("X-Content-Type-Options", "nosniff"),
		chimw.SetHeader("X-Frame-Options", "SAMEORIGIN"),
		chimw.SetHeader("Referrer-Policy", "no-referrer"),
		chimw.SetHeader("Cross-Origin-Opener-Policy", "same-origin"),
		chimw.SetHeader("Strict-Transport-Security", "max-age=15552000; includeSubDomains"),
		chimw.SetHeader("X-DNS-Prefetch-Control", "off"),
	).Handler(next)
}
