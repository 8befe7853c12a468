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

type NotebookRepository interface {
	FindAllByUser(userID int64) ([]*entity.Notebook, error)
	FindByNameAndUser(name string, userID int64) (*entity.Notebook, error)
	Create(notebook *entity.Notebook) error
}

type NotebookService struct {
	NotebookRepo NotebookRepository
	Validate     *validator.Validate
}

func NewNotebookService(notebookRepo NotebookRepository, validate *validator.Validate) *NotebookService {
	return &NotebookService{
		NotebookRepo: notebookRepo,
		Validate:     validate,
	}
}

// GetNotebookNames lists the names of every notebook owned by the actor.
func (n *NotebookService) GetNotebookNames(actor *entity.User) ([]string, apierror.ErrorResponse) {
	notebooks, err := n.NotebookRepo.FindAllByUser(actor.ID)
	if err != nil {
		log.Errorf("failed to fetch notebooks: %v", err)
		return nil, apierror.InternalServerError
	}

	names := make([]string, len(notebooks))
	for i, notebook := range notebooks {
		names[i] = notebook.Name
	}
	return names, nil
}

func (n *NotebookService) CreateNotebook(actor *entity.User, req *contract.CreateNotebookRequest) (*contract.NotebookResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	existing, err := n.NotebookRepo.FindByNameAndUser(req.Name, actor.ID)
	if err != nil {
		log.Errorf("failed to check notebook '%s': %v", req.Name, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.NewDuplicateNotebookError(req.Name)
	}

	now := utils.NowUTC()
	notebook := &entity.Notebook{
		ID:        uid.Generate(),
		Name:      req.Name,
		UserID:    actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = n.NotebookRepo.Create(notebook)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apierror.NewDuplicateNotebookError(req.Name)
	}

	if err != nil {
		log.Errorf("failed to create notebook: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNotebookResponse(notebook), nil
}

func toNotebookResponse(notebook *entity.Notebook) *contract.NotebookResponse {
	return &contract.NotebookResponse{
		ID:        notebook.ID,
		Name:      notebook.Name,
		UserID:    notebook.UserID,
		CreatedAt: utils.FormatEpoch(notebook.CreatedAt),
		UpdatedAt: utils.FormatEpoch(notebook.UpdatedAt),
	}
}
