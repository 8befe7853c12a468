package service

import (
	"os"
	"testing"

	"cloudcache/internal/contract"
	"cloudcache/internal/domain/entity"
	"cloudcache/internal/domain/sqlite"
	"cloudcache/internal/domain/sqlite/repository"
	"cloudcache/internal/utils/uid"
	"cloudcache/internal/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	uid.Init(1)
	os.Exit(m.Run())
}

type testEnv struct {
	Users     *UserService
	Access    *AccessService
	Notebooks *NotebookService
	Notes     *NoteService

	TokenRepo TokenRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("nospaces", validators.NoWhiteSpaces))

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	notebookRepo := repository.NewNotebookRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	return &testEnv{
		Users:     NewUserService(userRepo, validate),
		Access:    NewAccessService(tokenRepo, userRepo),
		Notebooks: NewNotebookService(notebookRepo, validate),
		Notes:     NewNoteService(noteRepo, notebookRepo, validate),
		TokenRepo: tokenRepo,
	}
}

// signup registers a user and returns the projection carrying the api key.
func signup(t *testing.T, env *testEnv, username string) *contract.UserResponse {
	t.Helper()

	user, apierr := env.Users.CreateUser(&contract.CreateUserRequest{
		Username:  username,
		FirstName: "Test",
		LastName:  "User",
		Email:     username + "@example.com",
	})
	require.Nil(t, apierr)
	require.NotNil(t, user)
	return user
}

func authedUser(t *testing.T, env *testEnv, username string) (*entity.User, string) {
	t.Helper()

	created := signup(t, env, username)
	token, apierr := env.Access.IssueOrGetToken(username, created.APIKey)
	require.Nil(t, apierr)

	return &entity.User{ID: created.ID, Username: created.Username, APIKey: created.APIKey}, token.Token
}
