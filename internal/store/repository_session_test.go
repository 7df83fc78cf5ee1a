package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	return NewSessionRepository(&DB{DB: db, logger: l}, l), mock
}

func TestSaveToken(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("auth_token", "tok-123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveToken(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadToken_Found(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	rows := sqlmock.NewRows([]string{"value"}).AddRow("tok-123")
	mock.ExpectQuery("SELECT value").
		WithArgs("auth_token").
		WillReturnRows(rows)

	token, err := repo.LoadToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLoadToken_NotFound(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value").
		WithArgs("auth_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.LoadToken(context.Background())

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSaveAndLoadUser_RoundTrip(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	user := models.User{
		ID:        uuid.New(),
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@corp.dev",
		Role:      models.RoleManager,
	}

	var stored string
	mock.ExpectExec("INSERT INTO kv_entries").
		WithArgs("auth_user", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveUser(context.Background(), user))

	// Feed back whatever JSON encoding SaveUser produced.
	stored = `{"id":"` + user.ID.String() + `","first_name":"Alice","last_name":"Smith","email":"alice@corp.dev","role":"manager","total_points":0}`
	mock.ExpectQuery("SELECT value").
		WithArgs("auth_user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(stored))

	loaded, err := repo.LoadUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, user.ID, loaded.ID)
	assert.Equal(t, "alice@corp.dev", loaded.Email)
	assert.Equal(t, models.RoleManager, loaded.Role)
	assert.Nil(t, loaded.CurrentCompetition)
}

func TestLoadUser_CorruptSnapshot(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectQuery("SELECT value").
		WithArgs("auth_user").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("{not json"))

	_, err := repo.LoadUser(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode user snapshot")
}

func TestClear_RemovesTokenAndUser(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("auth_token").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("auth_user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Clear(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClear_DBError(t *testing.T) {
	repo, mock := newTestSessionRepo(t)

	mock.ExpectExec("DELETE FROM kv_entries").
		WithArgs("auth_token").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.Clear(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth_token")
}
