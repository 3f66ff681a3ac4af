package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
)

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/v1/reports/:view",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("view")))
		}),
	}))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "rota com parâmetro", method: http.MethodGet, path: "/v1/reports/campaign", wantStatus: http.StatusOK, wantBody: "campaign"},
		{name: "rota inexistente", method: http.MethodGet, path: "/v2/reports", wantStatus: http.StatusNotFound, wantBody: apiErrors.ErrRouteNotFound},
		{name: "método não suportado", method: http.MethodDelete, path: "/v1/reports/campaign", wantStatus: http.StatusMethodNotAllowed, wantBody: apiErrors.ErrMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
