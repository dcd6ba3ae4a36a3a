package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/api/metrics"
	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	Actor *domain.Actor `json:"actor"`
}

// Login authenticates a roster user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials (password required for ADMIN only)"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, actor, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, Actor: actor})
}
