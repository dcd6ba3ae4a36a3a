package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Dashboard returns the summary, village and payment breakdowns, and
// the cumulative funds series over the caller's visible contributions.
//
// @Summary      Dashboard report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  report.Dashboard
// @Router       /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	d, err := h.service.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
