package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/everflow-reporting-api/internal/domain"
	"github.com/vfg2006/everflow-reporting-api/internal/usecases/reporting"
	"github.com/vfg2006/everflow-reporting-api/pkg/apiErrors"
	"github.com/vfg2006/everflow-reporting-api/pkg/log"
)

func SubmitReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// UseNumber preserva IDs numéricos maiores que 2^53
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()

		var body map[string]any
		if err := decoder.Decode(&body); err != nil {
			logger.WithField("error", err.Error()).Warn("reports: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		request, err := reporting.DecodeSubmitRequest(body)
		if err != nil {
			writeReportError(w, err, nil)
			return
		}

		status, err := service.Submit(r.Context(), request)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("reports: submission failed")
			writeReportError(w, err, status)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}

func GetReportStatus(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status, err := service.Status(r.Context())
		if err != nil {
			writeReportError(w, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}

func GetReportRecords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, ok := viewParam(w, r)
		if !ok {
			return
		}

		records, err := service.Records(r.Context(), view)
		if err != nil {
			writeReportError(w, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"view":    view,
			"records": records,
		})
	})
}

func ExportReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, ok := viewParam(w, r)
		if !ok {
			return
		}

		file, err := service.Export(r.Context(), view)
		if err != nil {
			writeReportError(w, err, nil)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(file.Filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(file.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("reports: failed to write export")
		}
	})
}

func GetReportSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, ok := viewParam(w, r)
		if !ok {
			return
		}

		summary, err := service.Summary(r.Context(), view)
		if err != nil {
			writeReportError(w, err, nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	})
}

func viewParam(w http.ResponseWriter, r *http.Request) (domain.View, bool) {
	view, err := domain.ParseView(httprouter.ParamsFromContext(r.Context()).ByName("view"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrViewNotFound, err.Error(), nil)
		return "", false
	}
	return view, true
}

// writeReportError traduz o erro do caso de uso. O status dos slots segue como detalhe quando existir.
func writeReportError(w http.ResponseWriter, err error, status *domain.ReportStatus) {
	var details any
	if status != nil {
		details = status
	}

	apiErrors.WriteError(w, reporting.ErrorCode(err), err.Error(), details)
}
