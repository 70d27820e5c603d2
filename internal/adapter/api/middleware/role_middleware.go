package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
)

// RoleMiddleware gates routes on the caller's profile role. The
// profile is re-fetched on every request; an unresolvable profile
// fails closed as an authorization failure.
type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

func (m *RoleMiddleware) Require(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get("uid").(string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Access denied")
			}

			if user.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, role+" privileges required")
			}

			return next(c)
		}
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleAdmin)(next)
}

func (m *RoleMiddleware) OwnerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleOwner)(next)
}

func (m *RoleMiddleware) CustomerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.Require(entity.RoleCustomer)(next)
}
