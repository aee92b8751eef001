package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/schoolstaff/internal/model"
	"anoa.com/schoolstaff/pkg/apperror"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRepositoryDNIExists(t *testing.T) {
	ctx := context.Background()

	t.Run("free everywhere probes all three tables", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPersonRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "admins"`).
			WithArgs("12345678A").
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers"`).
			WithArgs("12345678A").
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
			WithArgs("12345678A").
			WillReturnRows(countRows(0))

		exists, err := repo.DNIExists(ctx, "12345678A")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit in admins short-circuits", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPersonRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "admins"`).
			WithArgs("12345678A").
			WillReturnRows(countRows(1))

		exists, err := repo.DNIExists(ctx, "12345678A")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit in students still detected", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPersonRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "admins"`).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers"`).
			WillReturnRows(countRows(0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
			WillReturnRows(countRows(1))

		exists, err := repo.DNIExists(ctx, "12345678A")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestPersonRepositoryCreateAdmin(t *testing.T) {
	ctx := context.Background()

	newUser := func(staff bool) *model.User {
		return &model.User{
			Email:        "laura@school.test",
			PasswordHash: "hash",
			Role:         model.RoleAdmin,
			IsActive:     true,
			IsStaff:      staff,
			FirstLogin:   true,
		}
	}

	newAdmin := func() *model.Admin {
		return &model.Admin{
			Person:   model.Person{Name: "Laura", Surname: "Gomez", DNI: "12345678A"},
			HireDate: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("both rows inside one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPersonRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"is_superuser"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO "admins"`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		user := newUser(true)
		admin := newAdmin()
		require.NoError(t, repo.CreateAdmin(ctx, user, admin))
		assert.Equal(t, user.ID, admin.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing staff flag rolls back the identity", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPersonRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"is_staff", "is_superuser"}).AddRow(false, false))
		mock.ExpectRollback()

		err := repo.CreateAdmin(ctx, newUser(false), newAdmin())
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperror.ErrValidation))
		assert.NoError(t, mock.ExpectationsWereMet(), "no admin insert, transaction rolled back")
	})

	t.Run("failed admin insert rolls back the identity", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPersonRepository(db)

		boom := errors.New("insert failed")
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"is_superuser"}).AddRow(false))
		mock.ExpectExec(`INSERT INTO "admins"`).
			WillReturnError(boom)
		mock.ExpectRollback()

		err := repo.CreateAdmin(ctx, newUser(true), newAdmin())
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPersonRepositoryCreateTeacher(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewPersonRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"is_staff", "is_superuser"}).AddRow(false, false))
	mock.ExpectExec(`INSERT INTO "teachers"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	user := &model.User{
		Email:        "carlos@school.test",
		PasswordHash: "hash",
		Role:         model.RoleTeacher,
		IsActive:     true,
		FirstLogin:   true,
	}
	teacher := &model.Teacher{
		Person:   model.Person{Name: "Carlos", Surname: "Marin", DNI: "87654321B"},
		HireDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.CreateTeacher(ctx, user, teacher))
	assert.Equal(t, user.ID, teacher.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
