package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminExistsQuery = "SELECT 1 FROM admins WHERE LOWER(email) = LOWER($1) LIMIT 1"

func TestAdminRepositoryExistsByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(adminExistsQuery)).
		WithArgs("phtcon@ucsb.edu").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(adminExistsQuery)).
		WithArgs("student@ucsb.edu").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	ok, err := repo.ExistsByEmail(context.Background(), "phtcon@ucsb.edu")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByEmail(context.Background(), "student@ucsb.edu")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepositoryExistsByEmailError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAdminRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(adminExistsQuery)).WillReturnError(errors.New("conn reset"))

	_, err := repo.ExistsByEmail(context.Background(), "x@ucsb.edu")
	assert.Error(t, err)
}
