package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/everflow-reporting-api/internal/scheduler"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
)

// RefreshJob é o agendador de atualização acionado manualmente
type RefreshJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// RunRefreshJob executa manualmente a atualização da última submissão
func RunRefreshJob(job RefreshJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunRefreshJob")

		if err := job.TriggerManualSync(); err != nil {
			switch {
			case errors.Is(err, scheduler.ErrNothingToRefresh):
				apiErrors.WriteError(w, apiErrors.ErrNoSubmission, err.Error(), nil)
			case errors.Is(err, scheduler.ErrRefreshRunning):
				apiErrors.WriteError(w, apiErrors.ErrRefreshRunning, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Atualização iniciada com sucesso",
		})
	}
}

// GetCronStatus retorna o status do agendador de atualização
func GetCronStatus(job RefreshJob) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"refresh": job.GetStatus(),
		})
	}
}
