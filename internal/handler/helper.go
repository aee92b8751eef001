package handler

import (
	"strconv"
	"time"

	pkgvalidator "anoa.com/schoolstaff/pkg/validator"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

func formatValidationError(err error) string {
	return pkgvalidator.FormatValidationError(err)
}

// parseDate coerces a YYYY-MM-DD string; services never see raw text.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// pagination reads ?page=N (1-based) and returns limit/offset plus the page
// echoed back in list responses.
func pagination(c *gin.Context) (limit, offset, page int) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	return defaultPageSize, (page - 1) * defaultPageSize, page
}
