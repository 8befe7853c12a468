package service

import (
	"errors"

	"cloudcache/internal/contract"
	"cloudcache/internal/domain/entity"
	"cloudcache/internal/utils"
	"cloudcache/internal/utils/apierror"
	"cloudcache/internal/utils/uid"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type NoteRepository interface {
	FindAllByNotebook(notebookID int64) ([]*entity.Note, error)
	FindByKeyAndNotebook(key string, notebookID int64) (*entity.Note, error)
	Create(note *entity.Note) error
}

type NoteService struct {
	NoteRepo     NoteRepository
	NotebookRepo NotebookRepository
	Validate     *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, notebookRepo NotebookRepository, validate *validator.Validate) *NoteService {
	return &NoteService{
		NoteRepo:     noteRepo,
		NotebookRepo: notebookRepo,
		Validate:     validate,
	}
}

// CreateNote adds a key/value note to one of the actor's notebooks. The
// notebook lookup is scoped to the actor, so a notebook owned by someone
// else reports not-found rather than leaking its existence.
func (n *NoteService) CreateNote(actor *entity.User, notebookName string, req *contract.CreateNoteRequest) (int64, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return 0, apierror.FromValidationError(valerr)
	}

	notebook, apierr := n.fetchOwnedNotebook(actor, notebookName)
	if apierr != nil {
		return 0, apierr
	}

	existing, err := n.NoteRepo.FindByKeyAndNotebook(req.Key, notebook.ID)
	if err != nil {
		log.Errorf("failed to check note key '%s': %v", req.Key, err)
		return 0, apierror.InternalServerError
	}

	if existing != nil {
		return 0, apierror.NewDuplicateNoteError(req.Key, notebook.Name)
	}

	now := utils.NowUTC()
	note := &entity.Note{
		ID:          uid.Generate(),
		NotebookID:  notebook.ID,
		Key:         req.Key,
		Value:       req.Value,
		CreatedOn:   now,
		LastUpdated: now,
	}

	err = n.NoteRepo.Create(note)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return 0, apierror.NewDuplicateNoteError(req.Key, notebook.Name)
	}

	if err != nil {
		log.Errorf("failed to create note: %v", err)
		return 0, apierror.InternalServerError
	}
	return note.ID, nil
}

func (n *NoteService) GetNotes(actor *entity.User, notebookName string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	notebook, apierr := n.fetchOwnedNotebook(actor, notebookName)
	if apierr != nil {
		return nil, apierr
	}

	notes, err := n.NoteRepo.FindAllByNotebook(notebook.ID)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

func (n *NoteService) fetchOwnedNotebook(actor *entity.User, name string) (*entity.Notebook, apierror.ErrorResponse) {
	notebook, err := n.NotebookRepo.FindByNameAndUser(name, actor.ID)
	if err != nil {
		log.Errorf("failed to fetch notebook '%s': %v", name, err)
		return nil, apierror.InternalServerError
	}

	if notebook == nil {
		return nil, apierror.NewNotebookNotFoundError(name)
	}
	return notebook, nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:          note.ID,
		NotebookID:  note.NotebookID,
		Key:         note.Key,
		Value:       note.Value,
		CreatedOn:   utils.FormatEpoch(note.CreatedOn),
		LastUpdated: utils.FormatEpoch(note.LastUpdated),
	}
}
