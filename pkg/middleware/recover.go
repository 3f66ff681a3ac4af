package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/everflow-reporting-api/pkg/log"
)

// LogPanicMiddleware transforma um panic em 500 no formato de erro da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(p),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(debug.Stack()),
				}).Error("panic while handling request")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
