package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person holds the profile fields shared by every staff and student record.
// DNI carries a per-table unique index; global uniqueness across the three
// tables is checked by PersonRepository.DNIExists at creation time.
type Person struct {
	Name      string     `gorm:"size:100;not null" json:"name"`
	Surname   string     `gorm:"size:100;not null" json:"surname"`
	DNI       string     `gorm:"column:dni;size:20;not null;uniqueIndex" json:"dni"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Address   *string    `gorm:"size:255" json:"address,omitempty"`
	Phone     *string    `gorm:"size:30" json:"phone,omitempty"`
}

type Admin struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE" json:"user"`
	Person     `gorm:"embedded"`
	Department *string   `gorm:"size:100" json:"department,omitempty"`
	HireDate   time.Time `gorm:"type:date;not null" json:"hire_date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

type Teacher struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE" json:"user"`
	Person    `gorm:"embedded"`
	Degree    *string   `gorm:"size:100" json:"degree,omitempty"`
	HireDate  time.Time `gorm:"type:date;not null" json:"hire_date"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Student struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User           User      `gorm:"constraint:OnUpdate:CASCADE" json:"user"`
	Person         `gorm:"embedded"`
	EnrollmentDate time.Time `gorm:"type:date;not null" json:"enrollment_date"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
