package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/api/metrics"
	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type MentorHandler struct {
	service ports.MentorService
}

func NewMentorHandler(service ports.MentorService) *MentorHandler {
	return &MentorHandler{service: service}
}

type mentorRequest struct {
	Name     string `json:"name" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Village  string `json:"village" validate:"omitempty,oneof=Chandrapur Mohisguha Chatra"`
	Locality string `json:"locality" validate:"required"`
}

func (h *MentorHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	records, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

func (h *MentorHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req mentorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateMentorInput{
		Name:     req.Name,
		Contact:  req.Contact,
		Village:  domain.Village(req.Village),
		Locality: req.Locality,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("mentor", string(created.Village)).Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *MentorHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req mentorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), actor, domain.Mentor{
		ID:       id,
		Name:     req.Name,
		Contact:  req.Contact,
		Village:  domain.Village(req.Village),
		Locality: req.Locality,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *MentorHandler) Delete(c echo.Context) error {
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

	metrics.RecordsDeletedTotal.WithLabelValues("mentor").Inc()
	return c.NoContent(http.StatusNoContent)
}
