package bootstrap

import (
	"log"

	"anoa.com/schoolstaff/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Admin{},
		&model.Teacher{},
		&model.Student{},
	)
}

// SeedSuperuser creates the bootstrap superuser identity when it does not
// exist yet. The superuser carries no person row; it only administers
// accounts.
func SeedSuperuser(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		log.Println("SUPERUSER_EMAIL/SUPERUSER_PASSWORD not set, skipping superuser seed")
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Superuser already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	superuser := model.User{
		Email:        email,
		PasswordHash: string(hashedPasswordBytes),
		Role:         model.RoleAdmin,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
		FirstLogin:   false,
	}

	if err := db.Create(&superuser).Error; err != nil {
		return err
	}

	log.Printf("Superuser %s seeded successfully", email)
	return nil
}
