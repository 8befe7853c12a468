package middleware

import (
	"net/http"

	"cloudcache/internal/domain/entity"
	"cloudcache/internal/utils"
	"cloudcache/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type TokenRepository interface {
	FindByToken(token string) (*entity.AccessToken, error)
}

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	TokenRepo TokenRepository
	UserRepo  UserRepository
}

// NewAuthMiddleware builds the single enforcement point for protected
// routes: it resolves the presented token to its owning user and stashes the
// user in the request context. Handlers never trust a client-supplied user
// identifier; they read the resolved user and scope every query by it.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := utils.RawTokenFromCtx(c)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			token, err := cfg.TokenRepo.FindByToken(raw)
			if err != nil {
				log.Errorf("failed to resolve token: %v", err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if token == nil {
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			user, err := cfg.UserRepo.FindByID(token.UserID)
			if err != nil {
				log.Errorf("failed to resolve token owner: %v", err)
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// Token outlived its user row; treat as unauthorized.
				return c.JSON(http.StatusUnauthorized, apierror.UnauthorizedError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
