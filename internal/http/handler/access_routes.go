package handler

import (
	"net/http"

	"cloudcache/internal/contract"
	"cloudcache/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AccessService interface {
	IssueOrGetToken(username, apiKey string) (*contract.AccessTokenResponse, apierror.ErrorResponse)
}

type DefaultAccessRoute struct {
	AccessService AccessService
}

func NewAccessDefault(accessService AccessService) *DefaultAccessRoute {
	return &DefaultAccessRoute{AccessService: accessService}
}

// GetAccess exchanges ?username=&api_key= for the caller's access token.
// Idempotent: repeating the call returns the same token.
func (a *DefaultAccessRoute) GetAccess(c echo.Context) error {
	var req contract.AccessRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	token, apierr := a.AccessService.IssueOrGetToken(req.Username, req.APIKey)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"status": "OK", "access_token": token}
	return c.JSON(http.StatusOK, &resp)
}
