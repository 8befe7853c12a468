package repository

import (
	"testing"

	"cloudcache/internal/domain/entity"
	"cloudcache/internal/domain/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	return db
}

func newUser(id int64, username string) *entity.User {
	return &entity.User{
		ID:           id,
		Username:     username,
		FirstName:    "Test",
		LastName:     "User",
		EmailAddress: username + "@example.com",
		APIKey:       "0123456789ABCDEF0123456789ABCDEF",
		DateJoined:   1700000000000,
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(newUser(1, "alice")))

	dup := newUser(2, "alice")
	err := repo.Create(dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	found, err := repo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(1), found.ID)
}

func TestUserRepository_FindAbsent(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	found, err := repo.FindByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, found)

	exists, err := repo.ExistsByUsername("ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNotebookRepository_UniquePerUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewNotebookRepository(db)

	require.NoError(t, users.Create(newUser(1, "alice")))
	require.NoError(t, users.Create(newUser(2, "bob")))

	require.NoError(t, repo.Create(&entity.Notebook{ID: 10, Name: "groceries", UserID: 1}))

	err := repo.Create(&entity.Notebook{ID: 11, Name: "groceries", UserID: 1})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Same name under another user is fine.
	require.NoError(t, repo.Create(&entity.Notebook{ID: 12, Name: "groceries", UserID: 2}))
}

func TestNotebookRepository_ScopedLookup(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewNotebookRepository(db)

	require.NoError(t, users.Create(newUser(1, "alice")))
	require.NoError(t, users.Create(newUser(2, "bob")))
	require.NoError(t, repo.Create(&entity.Notebook{ID: 10, Name: "groceries", UserID: 1}))

	found, err := repo.FindByNameAndUser("groceries", 1)
	require.NoError(t, err)
	require.NotNil(t, found)

	// Bob does not see alice's notebook.
	found, err = repo.FindByNameAndUser("groceries", 2)
	require.NoError(t, err)
	assert.Nil(t, found)

	all, err := repo.FindAllByUser(2)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestNoteRepository_UniquePerNotebook(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	notebooks := NewNotebookRepository(db)
	repo := NewNoteRepository(db)

	require.NoError(t, users.Create(newUser(1, "alice")))
	require.NoError(t, notebooks.Create(&entity.Notebook{ID: 10, Name: "work", UserID: 1}))
	require.NoError(t, notebooks.Create(&entity.Notebook{ID: 11, Name: "home", UserID: 1}))

	require.NoError(t, repo.Create(&entity.Note{ID: 100, NotebookID: 10, Key: "todo", Value: "buy milk"}))

	err := repo.Create(&entity.Note{ID: 101, NotebookID: 10, Key: "todo", Value: "again"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Same key in a different notebook is fine.
	require.NoError(t, repo.Create(&entity.Note{ID: 102, NotebookID: 11, Key: "todo", Value: "mow lawn"}))

	count, err := repo.CountByNotebook(10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTokenRepository_OneTokenPerUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewTokenRepository(db)

	require.NoError(t, users.Create(newUser(1, "alice")))

	first := &entity.AccessToken{ID: 100, Token: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", UserID: 1, IssuedAt: 1700000000000}
	require.NoError(t, repo.Create(first))

	// A second live token for the same user must lose to the unique index.
	second := &entity.AccessToken{ID: 101, Token: "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB", UserID: 1, IssuedAt: 1700000000001}
	err := repo.Create(second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	found, err := repo.FindByUser(1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.Token, found.Token)

	byValue, err := repo.FindByToken(first.Token)
	require.NoError(t, err)
	require.NotNil(t, byValue)
	assert.Equal(t, int64(1), byValue.UserID)

	missing, err := repo.FindByToken("CCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTokenRepository_DuplicateTokenValue(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewTokenRepository(db)

	require.NoError(t, users.Create(newUser(1, "alice")))
	require.NoError(t, users.Create(newUser(2, "bob")))

	require.NoError(t, repo.Create(&entity.AccessToken{ID: 100, Token: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", UserID: 1}))

	err := repo.Create(&entity.AccessToken{ID: 101, Token: "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", UserID: 2})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
