package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/core/ports"
	"github.com/communityfund/fund-nexus/internal/export"
)

// ExportHandler streams the caller's visible records as CSV downloads.
// It reuses the scoped List operations, so a manager's export never
// contains another village's rows.
type ExportHandler struct {
	contributions ports.ContributionService
	mentors       ports.MentorService
	localities    ports.LocalityService
}

func NewExportHandler(contributions ports.ContributionService, mentors ports.MentorService, localities ports.LocalityService) *ExportHandler {
	return &ExportHandler{
		contributions: contributions,
		mentors:       mentors,
		localities:    localities,
	}
}

// Contributions exports the caller's visible contributions.
//
// @Summary      Export contributions as CSV
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /export/contributions [get]
func (h *ExportHandler) Contributions(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	records, err := h.contributions.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return writeCSV(c, "contributions", export.Contributions(records))
}

// Mentors exports the caller's visible mentors.
func (h *ExportHandler) Mentors(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	records, err := h.mentors.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return writeCSV(c, "mentors", export.Mentors(records))
}

// Localities exports the caller's visible localities.
func (h *ExportHandler) Localities(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	records, err := h.localities.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return writeCSV(c, "localities", export.Localities(records))
}

func writeCSV(c echo.Context, name string, table export.Table) error {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)
	return table.WriteCSV(c.Response())
}
