package repository

import (
	"context"

	"anoa.com/schoolstaff/internal/model"
	"anoa.com/schoolstaff/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PersonRepository interface {
	// DNIExists reports whether the DNI is taken by any person variant.
	// Person is split over three tables, so a single-table unique index is
	// not enough; all three are probed.
	DNIExists(ctx context.Context, dni string) (bool, error)
	// CreateAdmin persists the identity and the admin row in one
	// transaction. Either both rows commit or neither does.
	CreateAdmin(ctx context.Context, user *model.User, admin *model.Admin) error
	CreateTeacher(ctx context.Context, user *model.User, teacher *model.Teacher) error
	FindAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	FindTeacherByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error)
	ListAdmins(ctx context.Context, limit, offset int) ([]*model.Admin, error)
	ListTeachers(ctx context.Context, limit, offset int) ([]*model.Teacher, error)
	ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) DNIExists(ctx context.Context, dni string) (bool, error) {
	tables := []interface{}{&model.Admin{}, &model.Teacher{}, &model.Student{}}

	for _, table := range tables {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(table).
			Where("dni = ?", dni).
			Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}

	return false, nil
}

func (r *personRepository) CreateAdmin(ctx context.Context, user *model.User, admin *model.Admin) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		// An ADMIN identity without the staff flag cannot reach the admin
		// surface; abort before the admin row commits.
		if !user.IsStaff {
			return apperror.NewFieldError("user", "an ADMIN identity must have the staff flag set")
		}

		admin.UserID = user.ID
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *personRepository) CreateTeacher(ctx context.Context, user *model.User, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		teacher.UserID = user.ID
		if err := tx.Create(teacher).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *personRepository) FindAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *personRepository) FindTeacherByID(ctx context.Context, id uuid.UUID) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&teacher).Error; err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (r *personRepository) ListAdmins(ctx context.Context, limit, offset int) ([]*model.Admin, error) {
	var admins []*model.Admin
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("surname, name").
		Limit(limit).
		Offset(offset).
		Find(&admins).Error; err != nil {
		return nil, err
	}

	return admins, nil
}

func (r *personRepository) ListTeachers(ctx context.Context, limit, offset int) ([]*model.Teacher, error) {
	var teachers []*model.Teacher
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("surname, name").
		Limit(limit).
		Offset(offset).
		Find(&teachers).Error; err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *personRepository) ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	var students []*model.Student
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("surname, name").
		Limit(limit).
		Offset(offset).
		Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}
