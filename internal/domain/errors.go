package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed plan request.
type ErrorKind string

const (
	KindMethodNotAllowed       ErrorKind = "method_not_allowed"
	KindMalformedBody          ErrorKind = "malformed_body"
	KindBodyTooLarge           ErrorKind = "body_too_large"
	KindMissingRequiredField   ErrorKind = "missing_required_field"
	KindMissingTransportConfig ErrorKind = "missing_transport_config"
	KindMissingRecipient       ErrorKind = "missing_recipient"
	KindMailSendFailure        ErrorKind = "mail_send_failure"
	KindRateLimited            ErrorKind = "rate_limited"
	KindInternal               ErrorKind = "internal"
)

// User-facing messages. These are returned to the browser as-is.
const (
	MsgMethodNotAllowed       = "Method Not Allowed"
	MsgMalformedBody          = "Invalid JSON body"
	MsgBodyTooLarge           = "Payload Too Large"
	MsgMissingRequiredField   = "Thiếu dữ liệu bắt buộc"
	MsgMissingTransportConfig = "Thiếu SMTP env: SMTP_HOST/SMTP_USER/SMTP_PASS"
	MsgMissingRecipient       = "Thiếu email người nhận (MAIL_TO hoặc to_email)"
	MsgSendMailFailed         = "Send mail failed"
	MsgRateLimited            = "Quá nhiều yêu cầu, vui lòng thử lại sau"
	MsgInternal               = "internal server error"
)

// AppError is a structured application error with HTTP status code.
type AppError struct {
	Kind    ErrorKind `json:"-"`
	Code    int       `json:"-"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error constructors.

func ErrMethodNotAllowed() *AppError {
	return &AppError{Kind: KindMethodNotAllowed, Code: http.StatusMethodNotAllowed, Message: MsgMethodNotAllowed}
}

func ErrMalformedBody(err error) *AppError {
	return &AppError{Kind: KindMalformedBody, Code: http.StatusInternalServerError, Message: MsgMalformedBody, Err: err}
}

func ErrBodyTooLarge(limit int64) *AppError {
	return &AppError{
		Kind:    KindBodyTooLarge,
		Code:    http.StatusRequestEntityTooLarge,
		Message: MsgBodyTooLarge,
		Err:     fmt.Errorf("body exceeds %d bytes", limit),
	}
}

func ErrMissingRequiredField(err error) *AppError {
	return &AppError{Kind: KindMissingRequiredField, Code: http.StatusBadRequest, Message: MsgMissingRequiredField, Err: err}
}

func ErrMissingTransportConfig(missing string) *AppError {
	return &AppError{
		Kind:    KindMissingTransportConfig,
		Code:    http.StatusInternalServerError,
		Message: MsgMissingTransportConfig,
		Err:     fmt.Errorf("not set: %s", missing),
	}
}

func ErrMissingRecipient() *AppError {
	return &AppError{Kind: KindMissingRecipient, Code: http.StatusInternalServerError, Message: MsgMissingRecipient}
}

// ErrMailSend surfaces the transport error text to the caller, falling back
// to a fixed message when the error carries none.
func ErrMailSend(err error) *AppError {
	msg := MsgSendMailFailed
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &AppError{Kind: KindMailSendFailure, Code: http.StatusInternalServerError, Message: msg, Err: err}
}

func ErrRateLimited() *AppError {
	return &AppError{Kind: KindRateLimited, Code: http.StatusTooManyRequests, Message: MsgRateLimited}
}

func ErrInternal(err error) *AppError {
	return &AppError{Kind: KindInternal, Code: http.StatusInternalServerError, Message: MsgInternal, Err: err}
}

// AsAppError attempts to extract an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}
