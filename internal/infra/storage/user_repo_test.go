package storage

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepoGetUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username FROM users WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "ash#0001"))

	repo := NewUserRepo(db)
	u, err := repo.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Username: "ash#0001"}, u)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username FROM users WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))

	repo := NewUserRepo(db)
	_, err = repo.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoGetUserByUsernameKeepsFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username FROM users WHERE username = $1 ORDER BY id ASC LIMIT 1")).
		WithArgs("ash#0001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "ash#0001"))

	repo := NewUserRepo(db)
	u, err := repo.GetUserByUsername(context.Background(), "ash#0001")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
