package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "everflow_reporting"

var (
	// SubmissionsTotal conta as submissões processadas por origem (api, refresh)
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Submissões de relatório processadas.",
	}, []string{"trigger"})

	SlotUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slot_updates_total",
		Help:      "Transições de estado dos slots de resultado.",
	}, []string{"view", "state"})

	SlotRows = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "slot_rows",
		Help:      "Quantidade de linhas no slot de cada visão.",
	}, []string{"view"})

	EverflowRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "everflow_request_duration_seconds",
		Help:      "Duração das consultas ao relatório de entidades do Everflow.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"result"})

	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Exportações CSV por visão e resultado.",
	}, []string{"view", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
