package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lenscraft/studio-api/internal/models"
	"github.com/lenscraft/studio-api/internal/repository"
	"github.com/lenscraft/studio-api/pkg/token"
)

const callerContextKey = "caller"

// SessionResolver verifies the bearer token and loads the account it names,
// attaching a CallerIdentity to the request context. The account lookup keeps
// the role authoritative even if an old token carries a stale one.
func SessionResolver(tokens *token.Manager, accounts repository.AccountRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			account, err := accounts.FindByID(c.Request().Context(), claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(callerContextKey, models.CallerIdentity{
				AccountID: account.ID,
				Role:      account.Role,
			})
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the resolved role. It must run after
// SessionResolver.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, ok := Caller(c)
		if !ok || !caller.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// Caller returns the identity attached by SessionResolver.
func Caller(c echo.Context) (models.CallerIdentity, bool) {
	caller, ok := c.Get(callerContextKey).(models.CallerIdentity)
	return caller, ok
}

// SetCaller attaches an identity directly; used by handler tests.
func SetCaller(c echo.Context, caller models.CallerIdentity) {
	c.Set(callerContextKey, caller)
}
