package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fintrack/finance-tracker/internal/api/metrics"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

// ReportHandler handles aggregate report requests.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type summaryResponse struct {
	TotalIncome   float64               `json:"total_income"`
	TotalExpenses float64               `json:"total_expenses"`
	Net           float64               `json:"net"`
	Breakdown     []ports.CategoryTotal `json:"breakdown"`
}

// Summary handles GET /v1/reports/summary?from=&to=.
//
// @Summary      Totals and expense breakdown for the caller
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        from  query     string  false  "Inclusive range start (YYYY-MM-DD)"
// @Param        to    query     string  false  "Inclusive range end (YYYY-MM-DD)"
// @Success      200   {object}  summaryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	email, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.ReportDuration)
	result, err := h.service.Summary(c.Request().Context(), ports.SummaryInput{
		Owner: email,
		From:  from,
		To:    to,
	})
	timer.ObserveDuration()
	if err != nil {
		return err
	}

	breakdown := result.Breakdown
	if breakdown == nil {
		breakdown = []ports.CategoryTotal{}
	}

	return c.JSON(http.StatusOK, summaryResponse{
		TotalIncome:   result.TotalIncome,
		TotalExpenses: result.TotalExpenses,
		Net:           result.Net,
		Breakdown:     breakdown,
	})
}
