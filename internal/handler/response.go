package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/loveplan/backend/internal/domain"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// OK writes the success acknowledgement.
func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, domain.Ack{OK: true})
}

// Error writes a failure envelope, using AppError status codes when available.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := domain.AsAppError(err)
	if !ok {
		appErr = domain.ErrInternal(err)
	}
	if appErr.Code >= http.StatusInternalServerError {
		log.Printf("❌ %s: %v", appErr.Kind, appErr)
	}
	JSON(w, appErr.Code, domain.Failure{OK: false, Message: appErr.Message})
}

// ParseBody buffers the whole request body and decodes it as a plan.
// An empty body yields an empty plan, not an error.
func ParseBody(r *http.Request) (*domain.PlanSubmission, error) {
	var sub domain.PlanSubmission
	if r.Body == nil {
		return &sub, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.ErrBodyTooLarge(tooLarge.Limit)
		}
		return nil, domain.ErrMalformedBody(err)
	}
	if len(data) == 0 {
		return &sub, nil
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, domain.ErrMalformedBody(err)
	}
	// Valid JSON that is not an object carries no fields.
	if raw = bytes.TrimSpace(raw); len(raw) == 0 || raw[0] != '{' {
		return &sub, nil
	}
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, domain.ErrMalformedBody(err)
	}
	return &sub, nil
}
