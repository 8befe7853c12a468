package service

import (
	"errors"

	"cloudcache/internal/contract"
	"cloudcache/internal/domain/entity"
	"cloudcache/internal/utils"
	"cloudcache/internal/utils/apierror"
	"cloudcache/internal/utils/uid"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// mintAttempts bounds the token-collision retry loop. A collision needs two
// identical 122-bit random values, so a second pass is already unexpected.
const mintAttempts = 5

type TokenRepository interface {
	FindByToken(token string) (*entity.AccessToken, error)
	FindByUser(userID int64) (*entity.AccessToken, error)
	Create(token *entity.AccessToken) error
}

// AccessService exchanges a (username, api key) pair for the user's durable
// access token. Issuance is idempotent per user: the first successful call
// mints a token, every later call returns that same token.
type AccessService struct {
	TokenRepo TokenRepository
	UserRepo  UserRepository
}

func NewAccessService(tokenRepo TokenRepository, userRepo UserRepository) *AccessService {
	return &AccessService{
		TokenRepo: tokenRepo,
		UserRepo:  userRepo,
	}
}

func (a *AccessService) IssueOrGetToken(username, apiKey string) (*contract.AccessTokenResponse, apierror.ErrorResponse) {
	user, err := a.UserRepo.FindByUsername(username)
	if err != nil {
		log.Errorf("failed to fetch user: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.NewUserNotFoundError(username)
	}

	if apiKey != user.APIKey {
		return nil, apierror.InvalidAPIKeyError
	}

	token, err := a.TokenRepo.FindByUser(user.ID)
	if err != nil {
		log.Errorf("failed to fetch token: %v", err)
		return nil, apierror.InternalServerError
	}

	if token != nil {
		return toTokenResponse(token), nil
	}
	return a.mintToken(user)
}

func (a *AccessService) mintToken(user *entity.User) (*contract.AccessTokenResponse, apierror.ErrorResponse) {
	for attempt := 0; attempt < mintAttempts; attempt++ {
		candidate := &entity.AccessToken{
			ID:       uid.Generate(),
			Token:    opaqueKey(),
			UserID:   user.ID,
			IssuedAt: utils.NowUTC(),
		}

		// The pre-check keeps a value collision from being misread as a
		// concurrent issuance; the unique indexes remain the real guard.
		taken, err := a.TokenRepo.FindByToken(candidate.Token)
		if err != nil {
			log.Errorf("failed to check token value: %v", err)
			return nil, apierror.InternalServerError
		}
		if taken != nil {
			continue
		}

		err = a.TokenRepo.Create(candidate)
		if err == nil {
			return toTokenResponse(candidate), nil
		}

		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Errorf("failed to create token: %v", err)
			return nil, apierror.InternalServerError
		}

		// Duplicate key: either a concurrent request won this user's token,
		// or the token value itself collided. Prefer the winner's row.
		existing, err := a.TokenRepo.FindByUser(user.ID)
		if err != nil {
			log.Errorf("failed to re-fetch token: %v", err)
			return nil, apierror.InternalServerError
		}
		if existing != nil {
			return toTokenResponse(existing), nil
		}
	}

	log.Errorf("token minting exhausted %d attempts for user %d", mintAttempts, user.ID)
	return nil, apierror.InternalServerError
}

func toTokenResponse(token *entity.AccessToken) *contract.AccessTokenResponse {
	return &contract.AccessTokenResponse{
		Token:    token.Token,
		UserID:   token.UserID,
		IssuedAt: utils.FormatEpoch(token.IssuedAt),
	}
}
