package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/loveplan/backend/internal/domain"
	"github.com/loveplan/backend/internal/handler"
)

// Recovery catches panics and returns a 500 failure envelope instead of crashing the server.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("PANIC: %v\n%s", rec, debug.Stack())
				handler.Error(w, domain.ErrInternal(fmt.Errorf("panic: %v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
