package service

import (
	"context"
	"time"

	"anoa.com/schoolstaff/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func uuidNew() uuid.UUID {
	return uuid.New()
}

type setActiveCall struct {
	id     uuid.UUID
	active bool
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User

	emailExistsCalls    int
	setActiveCalls      []setActiveCall
	updatePasswordCalls int
	lastPasswordHash    string
	lastClearFirstLogin bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (r *fakeUserRepo) add(user *model.User) *model.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	r.emailExistsCalls++
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	r.setActiveCalls = append(r.setActiveCalls, setActiveCall{id: id, active: active})
	if user, ok := r.users[id]; ok {
		user.IsActive = active
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string, clearFirstLogin bool) error {
	r.updatePasswordCalls++
	r.lastPasswordHash = passwordHash
	r.lastClearFirstLogin = clearFirstLogin
	if user, ok := r.users[id]; ok {
		user.PasswordHash = passwordHash
		if clearFirstLogin {
			user.FirstLogin = false
		}
	}
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if user, ok := r.users[id]; ok {
		user.LastLogin = &at
	}
	return nil
}

type fakePersonRepo struct {
	users *fakeUserRepo

	admins   map[uuid.UUID]*model.Admin
	teachers map[uuid.UUID]*model.Teacher
	students map[uuid.UUID]*model.Student

	dniExistsCalls int
	// dniTakenAfterFirstCall simulates a lost race: the first probe reports
	// the DNI free, later probes report it taken.
	dniTakenAfterFirstCall string
	createAdminErr         error
	createTeachErr         error
}

func newFakePersonRepo(users *fakeUserRepo) *fakePersonRepo {
	return &fakePersonRepo{
		users:    users,
		admins:   map[uuid.UUID]*model.Admin{},
		teachers: map[uuid.UUID]*model.Teacher{},
		students: map[uuid.UUID]*model.Student{},
	}
}

func (r *fakePersonRepo) DNIExists(ctx context.Context, dni string) (bool, error) {
	r.dniExistsCalls++
	if r.dniTakenAfterFirstCall == dni && r.dniExistsCalls > 1 {
		return true, nil
	}
	for _, a := range r.admins {
		if a.DNI == dni {
			return true, nil
		}
	}
	for _, t := range r.teachers {
		if t.DNI == dni {
			return true, nil
		}
	}
	for _, s := range r.students {
		if s.DNI == dni {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePersonRepo) CreateAdmin(ctx context.Context, user *model.User, admin *model.Admin) error {
	if r.createAdminErr != nil {
		return r.createAdminErr
	}
	r.users.add(user)
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.UserID = user.ID
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakePersonRepo) CreateTeacher(ctx context.Context, user *model.User, teacher *model.Teacher) error {
	if r.createTeachErr != nil {
		return r.createTeachErr
	}
	r.users.add(user)
	if teacher.ID == uuid.Nil {
		teacher.ID = uuid.New()
	}
	teacher.UserID = user.ID
	r.teachers[teacher.ID] = teacher
	return nil
}

func (r *fakePersonRepo) FindAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, ok := r.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *admin
	if user, ok := r.users.users[admin.UserID]; ok {
		copied.User = *user
	}
	return &copied, nil
}

func (r *fakePersonRepo) FindTeacherByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, ok := r.teachers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *teacher
	if user, ok := r.users.users[teacher.UserID]; ok {
		copied.User = *user
	}
	return &copied, nil
}

func (r *fakePersonRepo) ListAdmins(ctx context.Context, limit, offset int) ([]*model.Admin, error) {
	var out []*model.Admin
	for _, a := range r.admins {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakePersonRepo) ListTeachers(ctx context.Context, limit, offset int) ([]*model.Teacher, error) {
	var out []*model.Teacher
	for _, t := range r.teachers {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakePersonRepo) ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	var out []*model.Student
	for _, s := range r.students {
		out = append(out, s)
	}
	return out, nil
}
