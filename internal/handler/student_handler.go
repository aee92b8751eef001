package handler

import (
	"net/http"

	"anoa.com/schoolstaff/internal/dto"
	"anoa.com/schoolstaff/internal/service"
	"anoa.com/schoolstaff/pkg/response"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService service.StudentService
}

func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

func (h *StudentHandler) List(c *gin.Context) {
	limit, offset, page := pagination(c)

	students, err := h.studentService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StudentListResponse{Students: students, Page: page})
}
