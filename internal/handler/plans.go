package handler

import (
	"context"
	"net/http"

	"github.com/loveplan/backend/internal/domain"
)

// PlanSubmitter is the core plan validate-and-mail operation.
type PlanSubmitter interface {
	Submit(ctx context.Context, sub *domain.PlanSubmission) error
}

// PlanHandler handles plan submission endpoints.
type PlanHandler struct {
	plans PlanSubmitter
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans PlanSubmitter) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// Submit handles POST /api/plan. The router guarantees the method.
func (h *PlanHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := ParseBody(r)
	if err != nil {
		Error(w, err)
		return
	}

	if err := h.plans.Submit(r.Context(), sub); err != nil {
		Error(w, err)
		return
	}

	OK(w)
}

// Serve is the single-route entry point for serverless runtimes, which
// deliver every method to the same function.
func (h *PlanHandler) Serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowed(w, r)
		return
	}
	h.Submit(w, r)
}

// MethodNotAllowed writes the 405 failure envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", http.MethodPost)
	Error(w, domain.ErrMethodNotAllowed())
}
