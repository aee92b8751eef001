package dto

import "anoa.com/schoolstaff/internal/model"

// CreateAdminRequest is the raw HTTP payload. Dates travel as YYYY-MM-DD
// strings and are coerced by the handler before the service sees them.
type CreateAdminRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Surname    string  `json:"surname" binding:"required,max=100"`
	DNI        string  `json:"dni" binding:"required,max=20"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	HireDate   string  `json:"hire_date" binding:"required,datetime=2006-01-02"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Address    *string `json:"address"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
}

type AdminResponse struct {
	Admin *model.Admin `json:"admin"`
}

type AdminListResponse struct {
	Admins []*model.Admin `json:"admins"`
	Page   int            `json:"page"`
}
