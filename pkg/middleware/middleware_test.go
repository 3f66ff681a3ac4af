package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/everflow-reporting-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{name: "origem liberada", allowed: []string{"http://a.com"}, origin: "http://a.com", method: http.MethodGet, wantHeader: "http://a.com", wantStatus: http.StatusTeapot},
		{name: "origem bloqueada", allowed: []string{"http://a.com"}, origin: "http://b.com", method: http.MethodGet, wantHeader: "", wantStatus: http.StatusTeapot},
		{name: "curinga", allowed: []string{"*"}, origin: "http://b.com", method: http.MethodGet, wantHeader: "http://b.com", wantStatus: http.StatusTeapot},
		{name: "preflight", allowed: []string{"*"}, origin: "http://b.com", method: http.MethodOptions, wantHeader: "http://b.com", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/reports", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_KeepsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	LoggingMiddleware(time.Second)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/reports", nil)
	req.Header.Set(CorrelationIDHeader, "req-42")
	rec := httptest.NewRecorder()

	LoggingMiddleware(time.Second)(handler).ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseWriter_CountsBytes(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}

	_, _ = rw.Write([]byte("date,linkClicks\n"))
	_, _ = rw.Write([]byte("2024-03-10,10\n"))
	rw.WriteHeader(http.StatusCreated)

	assert.Equal(t, 30, rw.written)
	assert.Equal(t, http.StatusCreated, rw.status)
}
