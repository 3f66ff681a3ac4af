package handler

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck verifica uma dependência, como o banco dos slots
type HealthCheck struct {
	Name  string
	Check func(context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthcheckHandler responde 503 quando alguma dependência falha
func HealthcheckHandler(checks ...HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		response := healthResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		}
		status := http.StatusOK

		if len(checks) > 0 {
			response.Checks = make(map[string]string, len(checks))
		}
		for _, check := range checks {
			if err := check.Check(ctx); err != nil {
				response.Checks[check.Name] = err.Error()
				response.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			response.Checks[check.Name] = "ok"
		}

		writeJSON(w, status, response)
	})
}
