package handler

import (
	"net/http"

	"anoa.com/schoolstaff/internal/dto"
	"anoa.com/schoolstaff/internal/service"
	"anoa.com/schoolstaff/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeacherHandler struct {
	teacherService service.TeacherService
}

func NewTeacherHandler(teacherService service.TeacherService) *TeacherHandler {
	return &TeacherHandler{
		teacherService: teacherService,
	}
}

func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hire_date must be a date in YYYY-MM-DD format"})
		return
	}

	birthDate, err := parseDatePtr(req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birth_date must be a date in YYYY-MM-DD format"})
		return
	}

	teacher, err := h.teacherService.Create(c.Request.Context(), service.CreateTeacherInput{
		Name:      req.Name,
		Surname:   req.Surname,
		DNI:       req.DNI,
		Email:     req.Email,
		Password:  req.Password,
		HireDate:  hireDate,
		BirthDate: birthDate,
		Address:   req.Address,
		Phone:     req.Phone,
		Degree:    req.Degree,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TeacherResponse{Teacher: teacher})
}

func (h *TeacherHandler) List(c *gin.Context) {
	limit, offset, page := pagination(c)

	teachers, err := h.teacherService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeacherListResponse{Teachers: teachers, Page: page})
}

func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacher id"})
		return
	}

	teacher, err := h.teacherService.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeacherResponse{Teacher: teacher})
}

func (h *TeacherHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacher id"})
		return
	}

	if err := h.teacherService.Deactivate(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "teacher deactivated"})
}

func (h *TeacherHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid teacher id"})
		return
	}

	teacher, err := h.teacherService.Activate(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TeacherResponse{Teacher: teacher})
}
