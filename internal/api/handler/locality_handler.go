package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/api/metrics"
	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type LocalityHandler struct {
	service ports.LocalityService
}

func NewLocalityHandler(service ports.LocalityService) *LocalityHandler {
	return &LocalityHandler{service: service}
}

type localityRequest struct {
	Name    string `json:"name" validate:"required"`
	Village string `json:"village" validate:"required,oneof=Chandrapur Mohisguha Chatra"`
}

// List returns localities in the caller's scope. Open to every role:
// the contribution form needs the locality names of the caller's
// village. Writes are role-gated at the route level and in the service.
//
// An optional ?village=X query narrows the result further. It never
// widens visibility; a manager asking for another village gets an
// empty list.
func (h *LocalityHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	if v := c.QueryParam("village"); v != "" {
		requested := domain.Village(v)
		if !requested.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown village")
		}
		filtered := make([]domain.Locality, 0, len(records))
		for _, l := range records {
			if l.Village == requested {
				filtered = append(filtered, l)
			}
		}
		records = filtered
	}

	return c.JSON(http.StatusOK, records)
}

func (h *LocalityHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req localityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateLocalityInput{
		Name:    req.Name,
		Village: domain.Village(req.Village),
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("locality", string(created.Village)).Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *LocalityHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req localityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), actor, domain.Locality{
		ID:      id,
		Name:    req.Name,
		Village: domain.Village(req.Village),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *LocalityHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("locality").Inc()
	return c.NoContent(http.StatusNoContent)
}
