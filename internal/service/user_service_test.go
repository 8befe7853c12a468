package service

import (
	"net/http"
	"testing"

	"cloudcache/internal/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUserMintsAPIKey(t *testing.T) {
	env := newTestEnv(t)

	user := signup(t, env, "alice")
	assert.Len(t, user.APIKey, contract.TokenLength)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_SingleCharacterUsername(t *testing.T) {
	env := newTestEnv(t)

	// No length floor on usernames beyond being non-empty.
	user := signup(t, env, "a")
	assert.Equal(t, "a", user.Username)

	found, apierr := env.Users.GetUser("a")
	require.Nil(t, apierr)
	assert.Equal(t, "a", found.Username)
}

func TestUserService_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	signup(t, env, "alice")

	_, apierr := env.Users.CreateUser(&contract.CreateUserRequest{
		Username:  "alice",
		FirstName: "Other",
		LastName:  "Person",
		Email:     "other@example.com",
	})
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusConflict, apierr.Code())

	// The first registration is untouched and queryable.
	found, gerr := env.Users.GetUser("alice")
	require.Nil(t, gerr)
	assert.Equal(t, "Test", found.FirstName)
}

func TestUserService_GetUserHidesAPIKey(t *testing.T) {
	env := newTestEnv(t)

	created := signup(t, env, "alice")
	require.NotEmpty(t, created.APIKey)

	found, apierr := env.Users.GetUser("alice")
	require.Nil(t, apierr)
	assert.Empty(t, found.APIKey)
}

func TestUserService_GetUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, apierr := env.Users.GetUser("ghost")
	require.NotNil(t, apierr)
	assert.Equal(t, http.StatusNotFound, apierr.Code())
}

func TestUserService_RejectsInvalidRequest(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		req  contract.CreateUserRequest
	}{
		{"missing email", contract.CreateUserRequest{Username: "alice", FirstName: "A", LastName: "B"}},
		{"bad email", contract.CreateUserRequest{Username: "alice", FirstName: "A", LastName: "B", Email: "nope"}},
		{"whitespace username", contract.CreateUserRequest{Username: "al ice", FirstName: "A", LastName: "B", Email: "a@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, apierr := env.Users.CreateUser(&tc.req)
			require.NotNil(t, apierr)
			assert.Equal(t, http.StatusBadRequest, apierr.Code())
		})
	}
}
