package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/loveplan/backend/internal/config"
	"github.com/loveplan/backend/internal/domain"
	"github.com/loveplan/backend/internal/mailer"
	"github.com/loveplan/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"area": "Cầu Giấy", "budget": "500k", "vibes": "chill",
	"date": "14/02", "time": "19:00", "place": "Hồ Tây", "money": "300k",
	"steps": "Ăn tối|Đi dạo| Xem phim ", "note": "nhớ mang ô"
}`

func newPlanHandler(defaultTo string) (*PlanHandler, *mailer.Recorder) {
	rec := &mailer.Recorder{}
	smtp := config.SMTPConfig{User: "me@example.com", FromName: "Love Plan"}
	svc := service.NewPlanService(service.SharedSender(rec), smtp, defaultTo)
	return NewPlanHandler(svc), rec
}

func decodeFailure(t *testing.T, w *httptest.ResponseRecorder) domain.Failure {
	t.Helper()
	var f domain.Failure
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &f))
	return f
}

func TestServeSuccess(t *testing.T) {
	h, rec := newPlanHandler("love@example.com")

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	out := rec.Outbox()
	require.Len(t, out, 1)
	assert.Equal(t, "love@example.com", out[0].To)
	assert.Equal(t, "💌 Kèo hẹn Cầu Giấy – 14/02 19:00", out[0].Subject)
	assert.Contains(t, out[0].HTML, "<li>Ăn tối</li><li>Đi dạo</li><li>Xem phim</li>")
}

func TestServeRejectsNonPost(t *testing.T) {
	cases := []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, validBody},
		{http.MethodDelete, "{}"},
	}
	for _, c := range cases {
		t.Run(c.method, func(t *testing.T) {
			h, rec := newPlanHandler("love@example.com")

			w := httptest.NewRecorder()
			h.Serve(w, httptest.NewRequest(c.method, "/api/plan", strings.NewReader(c.body)))

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, domain.Failure{OK: false, Message: "Method Not Allowed"}, decodeFailure(t, w))
			assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
			assert.Empty(t, rec.Outbox())
		})
	}
}

func TestServeEmptyBodyIsMissingFields(t *testing.T) {
	h, rec := newPlanHandler("love@example.com")

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader("")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Thiếu dữ liệu bắt buộc", decodeFailure(t, w).Message)
	assert.Empty(t, rec.Outbox())
}

func TestServeNonObjectBody(t *testing.T) {
	cases := []struct {
		body string
		code int
		msg  string
	}{
		{`[]`, http.StatusBadRequest, domain.MsgMissingRequiredField},
		{`[1,2]`, http.StatusBadRequest, domain.MsgMissingRequiredField},
		{`42`, http.StatusBadRequest, domain.MsgMissingRequiredField},
		{`"x"`, http.StatusBadRequest, domain.MsgMissingRequiredField},
		{`true`, http.StatusBadRequest, domain.MsgMissingRequiredField},
		{`null`, http.StatusBadRequest, domain.MsgMissingRequiredField},
		{` {} `, http.StatusBadRequest, domain.MsgMissingRequiredField},
		// whitespace is not an empty body and does not parse
		{`   `, http.StatusInternalServerError, domain.MsgMalformedBody},
	}
	for _, c := range cases {
		t.Run(c.body, func(t *testing.T) {
			h, rec := newPlanHandler("love@example.com")

			w := httptest.NewRecorder()
			h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(c.body)))

			assert.Equal(t, c.code, w.Code)
			assert.Equal(t, c.msg, decodeFailure(t, w).Message)
			assert.Empty(t, rec.Outbox())
		})
	}
}

func TestServeMalformedBody(t *testing.T) {
	h, rec := newPlanHandler("love@example.com")

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(`{"area": "Cầu`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.MsgMalformedBody, decodeFailure(t, w).Message)
	assert.Empty(t, rec.Outbox())
}

func TestServeMissingRecipient(t *testing.T) {
	h, rec := newPlanHandler("")

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.MsgMissingRecipient, decodeFailure(t, w).Message)
	assert.Empty(t, rec.Outbox())
}

func TestServeToEmailOverride(t *testing.T) {
	h, rec := newPlanHandler("")
	body := strings.Replace(validBody, `"note"`, `"to_email": "x@example.com", "note"`, 1)

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "x@example.com", rec.Outbox()[0].To)
}

func TestServeMissingTransportConfig(t *testing.T) {
	svc := service.NewPlanService(service.PerRequestSMTP(config.SMTPConfig{Port: 465}), config.SMTPConfig{}, "love@example.com")
	h := NewPlanHandler(svc)

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.MsgMissingTransportConfig, decodeFailure(t, w).Message)
}

func TestServeSendFailure(t *testing.T) {
	h, rec := newPlanHandler("love@example.com")
	rec.Err = assert.AnError

	w := httptest.NewRecorder()
	h.Serve(w, httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(validBody)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.Failure{OK: false, Message: assert.AnError.Error()}, decodeFailure(t, w))
}

func TestServeBodyTooLarge(t *testing.T) {
	h, rec := newPlanHandler("love@example.com")

	r := httptest.NewRequest(http.MethodPost, "/api/plan", strings.NewReader(validBody))
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 10)
	h.Serve(w, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, rec.Outbox())
}
