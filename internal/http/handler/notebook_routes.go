package handler

import (
	"net/http"

	"cloudcache/internal/contract"
	"cloudcache/internal/domain/entity"
	"cloudcache/internal/utils"
	"cloudcache/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NotebookService interface {
	GetNotebookNames(actor *entity.User) ([]string, apierror.ErrorResponse)
	CreateNotebook(actor *entity.User, req *contract.CreateNotebookRequest) (*contract.NotebookResponse, apierror.ErrorResponse)
}

type DefaultNotebookRoute struct {
	NotebookService NotebookService
}

func NewNotebookDefault(notebookService NotebookService) *DefaultNotebookRoute {
	return &DefaultNotebookRoute{NotebookService: notebookService}
}

func (n *DefaultNotebookRoute) GetNotebooks(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	names, apierr := n.NotebookService.GetNotebookNames(user)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notebooks": names}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNotebookRoute) CreateNotebook(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateNotebookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	notebook, apierr := n.NotebookService.CreateNotebook(user, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"status": "OK", "notebook": notebook}
	return c.JSON(http.StatusOK, &resp)
}
