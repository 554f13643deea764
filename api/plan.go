// Package handler is the serverless entry point for POST /api/plan.
package handler

import (
	"log"
	"net/http"

	"github.com/loveplan/backend/internal/config"
	planhttp "github.com/loveplan/backend/internal/handler"
	appMiddleware "github.com/loveplan/backend/internal/middleware"
	"github.com/loveplan/backend/internal/service"
)

// Handler is invoked by the serverless runtime for every method on /api/plan.
// Configuration is read per invocation and the SMTP transport lives only for
// the duration of the request.
func Handler(w http.ResponseWriter, r *http.Request) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("❌ Config error: %v", err)
		planhttp.Error(w, err)
		return
	}

	svc := service.NewPlanService(service.PerRequestSMTP(cfg.SMTP), cfg.SMTP, cfg.MailTo)
	h := http.HandlerFunc(planhttp.NewPlanHandler(svc).Serve)
	appMiddleware.Recovery(appMiddleware.RequestID(appMiddleware.Logger(h))).ServeHTTP(w, r)
}
