package handlers

import (
	"bytes"
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-training-log/internal/charts"
	"github.com/sbilibin2017/gw-training-log/internal/logger"
	"github.com/sbilibin2017/gw-training-log/internal/middlewares"
	"github.com/sbilibin2017/gw-training-log/internal/models"
)

// ReportReader builds the report of a user.
type ReportReader interface {
	DailyReport(ctx context.Context, username string) (*models.DailyReport, error)
}

// NewReportHandler returns an HTTP handler serving the authenticated user's report as JSON.
// @Summary Report
// @Description Measurement trend, protein trend and total work per muscle group of the authenticated user. Sections without data carry a notice.
// @Tags reports
// @Produce json
// @Success 200 {object} models.DailyReport "Report"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /report [get]
// @Security BearerAuth
func NewReportHandler(svc ReportReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, ok := loadReport(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewReportChartsHandler returns an HTTP handler rendering the authenticated user's report as charts.
// @Summary Report charts
// @Description HTML page with one chart per report section that has data and a notice for each one that has none.
// @Tags reports
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /report/charts [get]
// @Security BearerAuth
func NewReportChartsHandler(svc ReportReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, ok := loadReport(w, r, svc)
		if !ok {
			return
		}

		var page bytes.Buffer
		if err := charts.Render(&page, report); err != nil {
			logger.Log.Errorw("failed to render report charts", "request_id", middlewares.RequestIDFromContext(r.Context()), "user", report.Username, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page.Bytes())
	}
}

func loadReport(w http.ResponseWriter, r *http.Request, svc ReportReader) (*models.DailyReport, bool) {
	username, ok := middlewares.UsernameFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	report, err := svc.DailyReport(r.Context(), username)
	if err != nil {
		logger.Log.Errorw("failed to build report", "request_id", middlewares.RequestIDFromContext(r.Context()), "user", username, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return nil, false
	}

	return report, true
}
