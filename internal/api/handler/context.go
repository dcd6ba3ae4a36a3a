package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// ctxActor rebuilds the session actor from the claims the Auth
// middleware injected and fast-fails before any service call:
//   - role must be a known role (presence proves the middleware ran).
//   - MANAGER requires a village claim; a manager token without one
//     cannot be scoped, so it is rejected with 401.
func ctxActor(c echo.Context) (domain.Actor, error) {
	role, _ := c.Get("role").(string)
	if !domain.Role(role).Valid() {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	username, _ := c.Get("username").(string)
	village, _ := c.Get("village").(string)
	if domain.Role(role) == domain.RoleManager && village == "" {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing village assignment")
	}

	return domain.Actor{
		Username:        username,
		Role:            domain.Role(role),
		AssignedVillage: domain.Village(village),
	}, nil
}
