package handler

import (
	"net/http"

	"anoa.com/schoolstaff/internal/dto"
	"anoa.com/schoolstaff/internal/service"
	"anoa.com/schoolstaff/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req dto.CreateAdminRequest
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

	admin, err := h.adminService.Create(c.Request.Context(), service.CreateAdminInput{
		Name:       req.Name,
		Surname:    req.Surname,
		DNI:        req.DNI,
		Email:      req.Email,
		Password:   req.Password,
		HireDate:   hireDate,
		BirthDate:  birthDate,
		Address:    req.Address,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AdminResponse{Admin: admin})
}

func (h *AdminHandler) List(c *gin.Context) {
	limit, offset, page := pagination(c)

	admins, err := h.adminService.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminListResponse{Admins: admins, Page: page})
}

// Deactivate soft-deletes an admin account. Deactivating the identity behind
// the current session is refused here, before the service runs.
func (h *AdminHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	principalID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	admin, err := h.adminService.Get(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if admin.UserID == principalID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "you cannot deactivate your own account"})
		return
	}

	if err := h.adminService.Deactivate(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "admin deactivated"})
}

func (h *AdminHandler) Activate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid admin id"})
		return
	}

	admin, err := h.adminService.Activate(c.Request.Context(), id)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminResponse{Admin: admin})
}
