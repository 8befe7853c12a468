package handler

import (
	"net/http"

	"cloudcache/internal/contract"
	"cloudcache/internal/domain/entity"
	"cloudcache/internal/utils"
	"cloudcache/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	CreateNote(actor *entity.User, notebookName string, req *contract.CreateNoteRequest) (int64, apierror.ErrorResponse)
	GetNotes(actor *entity.User, notebookName string) ([]*contract.NoteResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	noteID, apierr := n.NoteService.CreateNote(user, c.Param("notebook"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"note_id": noteID}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	notes, apierr := n.NoteService.GetNotes(user, c.Param("notebook"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": notes}
	return c.JSON(http.StatusOK, &resp)
}
