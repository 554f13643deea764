package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/loveplan/backend/internal/config"
	"github.com/loveplan/backend/internal/mailer"
	appMiddleware "github.com/loveplan/backend/internal/middleware"
	"github.com/loveplan/backend/internal/service"
)

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file loaded, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	// One SMTP sender for the whole process
	var senders service.SenderProvider
	smtpSender, smtpErr := mailer.NewSMTPSender(cfg.SMTP)
	if smtpErr != nil {
		// Keep serving the front-end; plan submissions report the problem.
		log.Printf("⚠️  SMTP not configured: %v", smtpErr)
		senders = service.SenderFunc(func() (mailer.Sender, error) { return nil, smtpErr })
	} else {
		senders = service.SharedSender(smtpSender)
		go verifySMTP(smtpSender)
	}

	planSvc := service.NewPlanService(senders, cfg.SMTP, cfg.MailTo)

	apiLimiter := appMiddleware.PerMinute(cfg.RateLimitPerMinute)
	defer apiLimiter.Stop()

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      newRouter(cfg, planSvc, apiLimiter),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("🛑 Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✅ Server running at http://localhost:%d", cfg.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("❌ Server error: %v", err)
	}
}

func verifySMTP(s *mailer.SMTPSender) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Verify(ctx); err != nil {
		log.Printf("❌ SMTP verify error: %v", err)
		return
	}
	log.Println("✅ SMTP ready")
}
