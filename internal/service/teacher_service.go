package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"anoa.com/schoolstaff/internal/model"
	"anoa.com/schoolstaff/internal/repository"
	"anoa.com/schoolstaff/internal/session"
	"anoa.com/schoolstaff/pkg/apperror"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateTeacherInput struct {
	Name      string
	Surname   string
	DNI       string
	Email     string
	Password  string
	HireDate  time.Time
	BirthDate *time.Time
	Address   *string
	Phone     *string
	Degree    *string
}

type TeacherService interface {
	Create(ctx context.Context, input CreateTeacherInput) (*model.Teacher, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
	List(ctx context.Context, limit, offset int) ([]*model.Teacher, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
}

type teacherService struct {
	users    repository.UserRepository
	people   repository.PersonRepository
	sessions *session.Store
}

func NewTeacherService(users repository.UserRepository, people repository.PersonRepository, sessions *session.Store) TeacherService {
	return &teacherService{
		users:    users,
		people:   people,
		sessions: sessions,
	}
}

// Create mirrors AdminService.Create with role TEACHER: same ordered checks,
// same atomic two-row insert, same duplicate-key translation.
func (s *teacherService) Create(ctx context.Context, input CreateTeacherInput) (*model.Teacher, error) {
	hireDate := ""
	if !input.HireDate.IsZero() {
		hireDate = input.HireDate.Format("2006-01-02")
	}

	missing := validateRequired(map[string]string{
		"name":      input.Name,
		"surname":   input.Surname,
		"dni":       input.DNI,
		"email":     input.Email,
		"hire_date": hireDate,
		"password":  input.Password,
	}, accountRequiredFields)
	if len(missing) > 0 {
		return nil, missingFieldsError(missing)
	}

	if hireDateInFuture(input.HireDate, time.Now()) {
		return nil, apperror.NewFieldError("hire_date", "hire date cannot be in the future")
	}

	if exists, err := s.people.DNIExists(ctx, input.DNI); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.NewFieldError("dni", "dni already exists")
	}

	if exists, err := s.users.EmailExists(ctx, input.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, apperror.NewFieldError("email", "email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleTeacher,
		IsActive:     true,
		FirstLogin:   true,
	}

	teacher := &model.Teacher{
		Person: model.Person{
			Name:      input.Name,
			Surname:   input.Surname,
			DNI:       input.DNI,
			BirthDate: input.BirthDate,
			Address:   input.Address,
			Phone:     input.Phone,
		},
		Degree:   input.Degree,
		HireDate: input.HireDate,
	}

	if err := s.people.CreateTeacher(ctx, user, teacher); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateKeyError(ctx, s.people, s.users, input.DNI, input.Email)
		}
		return nil, err
	}

	teacher.User = *user
	return teacher, nil
}

func (s *teacherService) Get(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, err := s.people.FindTeacherByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) List(ctx context.Context, limit, offset int) ([]*model.Teacher, error) {
	return s.people.ListTeachers(ctx, limit, offset)
}

func (s *teacherService) Deactivate(ctx context.Context, id uuid.UUID) error {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if teacher.User.ID == uuid.Nil {
		return apperror.NewFieldError("user", "teacher has no associated user account")
	}

	if err := s.users.SetActive(ctx, teacher.UserID, false); err != nil {
		return err
	}

	return s.sessions.RevokeUser(ctx, teacher.UserID)
}

func (s *teacherService) Activate(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	teacher, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if teacher.User.ID == uuid.Nil {
		return teacher, nil
	}

	if err := s.users.SetActive(ctx, teacher.UserID, true); err != nil {
		return nil, err
	}

	if err := s.sessions.ClearUser(ctx, teacher.UserID); err != nil {
		return nil, err
	}

	teacher.User.IsActive = true
	return teacher, nil
}
