package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/loveplan/backend/internal/contextkeys"
)

// RequestID tags every request with a fresh ID, exposed in the X-Request-ID
// response header and stored in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), contextkeys.RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

