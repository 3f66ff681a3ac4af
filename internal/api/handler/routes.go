package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/everflow-reporting-api/internal/api/handler/router"
	"github.com/vfg2006/everflow-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/everflow-reporting-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck(checks ...HealthCheck) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(checks...),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: SubmitReport(service),
		},
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: GetReportStatus(service),
		},
		{
			Path:    "/v1/reports/:view",
			Method:  http.MethodGet,
			Handler: GetReportRecords(service),
		},
		{
			Path:    "/v1/reports/:view/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
		{
			Path:    "/v1/reports/:view/summary",
			Method:  http.MethodGet,
			Handler: GetReportSummary(service),
		},
	}
}

func CronJobs(job RefreshJob) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/refresh/run",
			Method:  http.MethodPost,
			Handler: RunRefreshJob(job),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(job),
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
