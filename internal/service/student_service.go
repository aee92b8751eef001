package service

import (
	"context"

	"anoa.com/schoolstaff/internal/model"
	"anoa.com/schoolstaff/internal/repository"
)

// StudentService is read-only: student accounts are provisioned elsewhere,
// but their DNIs participate in the global uniqueness check and admins can
// browse them.
type StudentService interface {
	List(ctx context.Context, limit, offset int) ([]*model.Student, error)
}

type studentService struct {
	people repository.PersonRepository
}

func NewStudentService(people repository.PersonRepository) StudentService {
	return &studentService{people: people}
}

func (s *studentService) List(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	return s.people.ListStudents(ctx, limit, offset)
}
