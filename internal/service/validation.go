package service

import (
	"context"
	"strings"
	"time"

	"anoa.com/schoolstaff/internal/repository"
	"anoa.com/schoolstaff/pkg/apperror"
)

// Field order follows the provisioning contract; missing-field errors report
// in this order.
var accountRequiredFields = []string{"name", "surname", "dni", "email", "hire_date", "password"}

// validateRequired returns the required keys whose values are empty or
// whitespace, preserving the order of the required list.
func validateRequired(fields map[string]string, required []string) []string {
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(fields[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func missingFieldsError(missing []string) error {
	fields := make(map[string]string, len(missing))
	for _, name := range missing {
		fields[name] = "this field is required"
	}
	return apperror.NewValidationError(fields)
}

// hireDateInFuture compares at date granularity: hiring today is fine,
// tomorrow is not.
func hireDateInFuture(hireDate, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	hd := time.Date(hireDate.Year(), hireDate.Month(), hireDate.Day(), 0, 0, 0, 0, time.UTC)
	return hd.After(today)
}

// duplicateKeyError re-probes dni and email after the store rejected a
// commit with a unique-constraint violation, so a lost race reports the
// same field error the pre-check would have produced.
func duplicateKeyError(ctx context.Context, people repository.PersonRepository, users repository.UserRepository, dni, email string) error {
	if exists, err := people.DNIExists(ctx, dni); err == nil && exists {
		return apperror.NewFieldError("dni", "dni already exists")
	}
	if exists, err := users.EmailExists(ctx, email); err == nil && exists {
		return apperror.NewFieldError("email", "email already exists")
	}
	return apperror.NewValidationError(map[string]string{
		"dni":   "dni or email already exists",
		"email": "dni or email already exists",
	})
}
