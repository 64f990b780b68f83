package middleware

import (
	"net/http"
	"strings"

	"artigos-api/internal/database"
	"artigos-api/internal/model"
	"artigos-api/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var resolveUser = service.ResolveUser

func extractUser(c echo.Context, db database.DB, codec *service.TokenCodec) (*model.User, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, service.ErrUnauthenticated.Error())
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, service.ErrUnauthenticated.Error())
	}
	user, err := resolveUser(c.Request().Context(), db, codec, parts[1])
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, service.ErrUnauthenticated.Error())
	}
	return user, nil
}

// RequireAuth resolves the bearer token to a stored user before the
// handler runs. It fails closed: any token problem, and any token
// whose user no longer exists, yields the same 401.
func RequireAuth(db database.DB, codec *service.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := extractUser(c, db, codec)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin is RequireAuth plus an admin check.
func RequireAdmin(db database.DB, codec *service.TokenCodec) echo.MiddlewareFunc {
	requireAuth := RequireAuth(db, codec)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return requireAuth(func(c echo.Context) error {
			user := c.Get(ContextUserKey).(*model.User)
			if !user.IsAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		})
	}
}
