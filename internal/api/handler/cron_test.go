package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/everflow-reporting-api/internal/api/handler/router"
	"github.com/vfg2006/everflow-reporting-api/internal/scheduler"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
)

type stubRefreshJob struct {
	err error
}

func (s stubRefreshJob) TriggerManualSync() error { return s.err }

func (s stubRefreshJob) GetStatus() map[string]any {
	return map[string]any{"is_running": false}
}

func TestRunRefreshJob(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "iniciada", wantStatus: http.StatusAccepted},
		{name: "sem submissão", err: scheduler.ErrNothingToRefresh, wantStatus: http.StatusConflict, wantCode: apiErrors.ErrNoSubmission},
		{name: "em andamento", err: scheduler.ErrRefreshRunning, wantStatus: http.StatusConflict, wantCode: apiErrors.ErrRefreshRunning},
		{name: "erro inesperado", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(CronJobs(stubRefreshJob{err: tt.err})...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/refresh/run", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(stubRefreshJob{})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"refresh":{"is_running":false}}`, rec.Body.String())
}
