package utils

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// RawTokenFromCtx extracts the opaque access token from the request. The
// Authorization header wins over the access_token query parameter; an empty
// string means the client supplied neither.
func RawTokenFromCtx(c echo.Context) string {
	token := sanitizeToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		token = strings.TrimSpace(c.QueryParam("access_token"))
	}
	return token
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
}
