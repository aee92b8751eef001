package dto

import "anoa.com/schoolstaff/internal/model"

type CreateTeacherRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Surname   string  `json:"surname" binding:"required,max=100"`
	DNI       string  `json:"dni" binding:"required,max=20"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	HireDate  string  `json:"hire_date" binding:"required,datetime=2006-01-02"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Degree    *string `json:"degree"`
}

type TeacherResponse struct {
	Teacher *model.Teacher `json:"teacher"`
}

type TeacherListResponse struct {
	Teachers []*model.Teacher `json:"teachers"`
	Page     int              `json:"page"`
}

type StudentListResponse struct {
	Students []*model.Student `json:"students"`
	Page     int              `json:"page"`
}
