package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/everflow-reporting-api/pkg/log"
	"github.com/vfg2006/everflow-reporting-api/pkg/metrics"
)

// CorrelationIDHeader permite ao cliente encadear submissão e exportação no mesmo ID
const CorrelationIDHeader = "X-Correlation-ID"

// LoggingMiddleware registra uma linha por requisição e observa a duração.
// Requisições acima de slowThreshold são registradas como aviso.
func LoggingMiddleware(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context(), r.Header.Get(CorrelationIDHeader))
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			metrics.HTTPRequestDuration.
				WithLabelValues(r.Method, strconv.Itoa(rw.status)).
				Observe(elapsed.Seconds())

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.status,
				"duration_ms": elapsed.Milliseconds(),
				"bytes":       rw.written,
				"remote_addr": r.RemoteAddr,
			})

			switch {
			case rw.status >= http.StatusInternalServerError:
				logger.Error("request finished with error")
			case rw.status >= http.StatusBadRequest:
				logger.Warn("request finished with client error")
			case slowThreshold > 0 && elapsed > slowThreshold:
				logger.Warn("slow request")
			default:
				logger.Info("request finished")
			}
		})
	}
}

// responseWriter guarda o status e o tamanho da resposta
type responseWriter struct {
	http.ResponseWriter
	status  int
	written int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	return n, err
}
