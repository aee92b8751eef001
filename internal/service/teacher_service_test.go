package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/schoolstaff/internal/model"
	"anoa.com/schoolstaff/internal/session"
	"anoa.com/schoolstaff/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTeacherInput() CreateTeacherInput {
	return CreateTeacherInput{
		Name:     "Carlos",
		Surname:  "Marin",
		DNI:      "87654321B",
		Email:    "carlos@school.test",
		Password: "supersecret",
		HireDate: pastDate(10),
		Degree:   strPtr("Mathematics"),
	}
}

func newTeacherSvc(users *fakeUserRepo, people *fakePersonRepo) TeacherService {
	return NewTeacherService(users, people, session.NewStore(nil, time.Hour))
}

func TestTeacherServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input creates identity with TEACHER role", func(t *testing.T) {
		users := newFakeUserRepo()
		people := newFakePersonRepo(users)
		svc := newTeacherSvc(users, people)

		teacher, err := svc.Create(ctx, validTeacherInput())
		require.NoError(t, err)

		assert.Equal(t, model.RoleTeacher, teacher.User.Role)
		assert.True(t, teacher.User.IsActive)
		assert.True(t, teacher.User.FirstLogin)
		assert.Equal(t, "Mathematics", *teacher.Degree)
		assert.Len(t, people.teachers, 1)
	})

	t.Run("dni held by an admin blocks a teacher", func(t *testing.T) {
		users := newFakeUserRepo()
		people := newFakePersonRepo(users)
		people.admins[uuidNew()] = &model.Admin{Person: model.Person{DNI: "87654321B"}}
		svc := newTeacherSvc(users, people)

		_, err := svc.Create(ctx, validTeacherInput())
		var ve *apperror.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Contains(t, ve.Fields, "dni")
		assert.Empty(t, people.teachers)
		assert.Empty(t, users.users)
	})

	t.Run("missing fields reported exactly", func(t *testing.T) {
		users := newFakeUserRepo()
		people := newFakePersonRepo(users)
		svc := newTeacherSvc(users, people)

		_, err := svc.Create(ctx, CreateTeacherInput{Name: "Carlos", HireDate: pastDate(1)})
		var ve *apperror.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Len(t, ve.Fields, 4)
		assert.Contains(t, ve.Fields, "surname")
		assert.Contains(t, ve.Fields, "dni")
		assert.Contains(t, ve.Fields, "email")
		assert.Contains(t, ve.Fields, "password")
	})
}

func TestTeacherServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	users := newFakeUserRepo()
	people := newFakePersonRepo(users)
	svc := newTeacherSvc(users, people)

	teacher, err := svc.Create(ctx, validTeacherInput())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, teacher.ID))
	assert.False(t, users.users[teacher.UserID].IsActive)

	// Second deactivate is a no-op success.
	require.NoError(t, svc.Deactivate(ctx, teacher.ID))

	reactivated, err := svc.Activate(ctx, teacher.ID)
	require.NoError(t, err)
	assert.True(t, reactivated.User.IsActive)
	assert.Equal(t, teacher.Person, reactivated.Person)
}
