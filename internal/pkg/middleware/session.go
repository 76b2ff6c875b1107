package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/glossylabs/campaign/internal/pkg/models"
	"github.com/glossylabs/campaign/internal/pkg/session"
	"github.com/glossylabs/campaign/internal/utils"
)

// SessionAuthMiddleware resolves the session cookie into a user ID on every
// request. Authorization state is re-derived per request from the session
// store; nothing is cached between requests.
func SessionAuthMiddleware(store session.Store, cfg models.SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				return utils.UnauthorizedResponse(c, "Not authenticated")
			}

			userID, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Not authenticated")
			}

			c.Set("user_id", userID)
			c.Set("session_id", cookie.Value)

			return next(c)
		}
	}
}
