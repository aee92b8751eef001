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

// CreateAdminInput carries already-coerced values; the handler layer parses
// dates before the service is involved.
type CreateAdminInput struct {
	Name       string
	Surname    string
	DNI        string
	Email      string
	Password   string
	HireDate   time.Time
	BirthDate  *time.Time
	Address    *string
	Phone      *string
	Department *string
}

type AdminService interface {
	Create(ctx context.Context, input CreateAdminInput) (*model.Admin, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	List(ctx context.Context, limit, offset int) ([]*model.Admin, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*model.Admin, error)
}

type adminService struct {
	users    repository.UserRepository
	people   repository.PersonRepository
	sessions *session.Store
}

func NewAdminService(users repository.UserRepository, people repository.PersonRepository, sessions *session.Store) AdminService {
	return &adminService{
		users:    users,
		people:   people,
		sessions: sessions,
	}
}

// Create provisions an ADMIN identity and its admin profile atomically.
// Checks run in a fixed order: required fields, hire date, DNI uniqueness,
// email uniqueness. A duplicate key surfacing at commit (a race lost after
// the pre-checks) is translated back into the matching field error.
func (s *adminService) Create(ctx context.Context, input CreateAdminInput) (*model.Admin, error) {
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
		Role:         model.RoleAdmin,
		IsActive:     true,
		IsStaff:      true,
		FirstLogin:   true,
	}

	admin := &model.Admin{
		Person: model.Person{
			Name:      input.Name,
			Surname:   input.Surname,
			DNI:       input.DNI,
			BirthDate: input.BirthDate,
			Address:   input.Address,
			Phone:     input.Phone,
		},
		Department: input.Department,
		HireDate:   input.HireDate,
	}

	if err := s.people.CreateAdmin(ctx, user, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateKeyError(ctx, s.people, s.users, input.DNI, input.Email)
		}
		return nil, err
	}

	admin.User = *user
	return admin, nil
}

func (s *adminService) Get(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := s.people.FindAdminByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *adminService) List(ctx context.Context, limit, offset int) ([]*model.Admin, error) {
	return s.people.ListAdmins(ctx, limit, offset)
}

// Deactivate soft-deletes by flipping is_active on the linked identity. The
// admin row is untouched and the operation is idempotent.
func (s *adminService) Deactivate(ctx context.Context, id uuid.UUID) error {
	admin, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	// A missing identity is a data-integrity bug, not a user mistake.
	if admin.User.ID == uuid.Nil {
		return apperror.NewFieldError("user", "admin has no associated user account")
	}

	if err := s.users.SetActive(ctx, admin.UserID, false); err != nil {
		return err
	}

	return s.sessions.RevokeUser(ctx, admin.UserID)
}

// Activate reverses a deactivation. No-op when the identity is missing.
func (s *adminService) Activate(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if admin.User.ID == uuid.Nil {
		return admin, nil
	}

	if err := s.users.SetActive(ctx, admin.UserID, true); err != nil {
		return nil, err
	}

	if err := s.sessions.ClearUser(ctx, admin.UserID); err != nil {
		return nil, err
	}

	admin.User.IsActive = true
	return admin, nil
}
