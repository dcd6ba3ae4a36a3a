package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/api/metrics"
	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type ContributionHandler struct {
	service ports.ContributionService
}

func NewContributionHandler(service ports.ContributionService) *ContributionHandler {
	return &ContributionHandler{service: service}
}

// contributionRequest is the create/update payload. Village is advisory
// for managers: the service pins it to the actor's assigned village.
type contributionRequest struct {
	DonorName    string  `json:"donor_name" validate:"required"`
	DonorContact string  `json:"donor_contact"`
	Village      string  `json:"village" validate:"omitempty,oneof=Chandrapur Mohisguha Chatra"`
	Locality     string  `json:"locality" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	PaymentType  string  `json:"payment_type" validate:"required,oneof=Cash Online Other"`
	Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// List returns the contributions inside the caller's visibility scope.
//
// @Summary      List contributions
// @Tags         contributions
// @Produce      json
// @Success      200  {array}  domain.Contribution
// @Router       /contributions [get]
func (h *ContributionHandler) List(c echo.Context) error {
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

// Create records a new contribution.
//
// @Summary      Record a contribution
// @Tags         contributions
// @Accept       json
// @Produce      json
// @Param        body  body      contributionRequest  true  "Contribution fields"
// @Success      201   {object}  domain.Contribution
// @Failure      400   {object}  map[string]string
// @Router       /contributions [post]
func (h *ContributionHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req contributionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), actor, ports.CreateContributionInput{
		DonorName:    req.DonorName,
		DonorContact: req.DonorContact,
		Village:      domain.Village(req.Village),
		Locality:     req.Locality,
		Amount:       req.Amount,
		PaymentType:  domain.PaymentType(req.PaymentType),
		Date:         req.Date,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("contribution", string(created.Village)).Inc()
	metrics.ContributionAmountTotal.WithLabelValues(string(created.Village)).Add(created.Amount)

	return c.JSON(http.StatusCreated, created)
}

// Update replaces the contribution with the given id.
func (h *ContributionHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req contributionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), actor, domain.Contribution{
		ID:           id,
		DonorName:    req.DonorName,
		DonorContact: req.DonorContact,
		Village:      domain.Village(req.Village),
		Locality:     req.Locality,
		Amount:       req.Amount,
		PaymentType:  domain.PaymentType(req.PaymentType),
		Date:         req.Date,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes the contribution with the given id. ADMIN only.
func (h *ContributionHandler) Delete(c echo.Context) error {
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

	metrics.RecordsDeletedTotal.WithLabelValues("contribution").Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the numeric :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
