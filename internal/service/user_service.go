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

type UserRepository interface {
	FindByID(id int64) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// CreateUser registers a new account and mints its api key. The key is never
// client-supplied; it appears exactly once, in this response.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	// Pre-check so the common case gets the right error without touching the
	// unique index; the index itself settles races below.
	exists, err := u.UserRepo.ExistsByUsername(req.Username)
	if err != nil {
		log.Errorf("failed to check username '%s': %v", req.Username, err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.NewDuplicateUserError(req.Username)
	}

	user := &entity.User{
		ID:           uid.Generate(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.Email,
		APIKey:       opaqueKey(),
		DateJoined:   utils.NowUTC(),
	}

	err = u.UserRepo.Create(user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apierror.NewDuplicateUserError(req.Username)
	}

	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(user, true), nil
}

func (u *UserService) GetUser(username string) (*contract.UserResponse, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindByUsername(username)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NewUserNotFoundError(username)
	}
	return toUserResponse(user, false), nil
}

func toUserResponse(user *entity.User, withAPIKey bool) *contract.UserResponse {
	resp := &contract.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.EmailAddress,
		DateJoined: utils.FormatEpoch(user.DateJoined),
	}

	if withAPIKey {
		resp.APIKey = user.APIKey
	}
	return resp
}
