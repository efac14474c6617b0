package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
)

type StaffHandler struct {
	svc *service.StaffService
}

func NewStaffHandler(svc *service.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

func (h *StaffHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListUsers())
}

func (h *StaffHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	u, err := h.svc.GetUser(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *StaffHandler) GetUserByUsername(c *gin.Context) {
	u, err := h.svc.GetUserByUsername(c.Param("username"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *StaffHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cmd domain.UpdateUserCommand
	if !bindJSON(c, &cmd) {
		return
	}
	u, err := h.svc.UpdateUser(id, &cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *StaffHandler) ListDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListDepartments())
}

func (h *StaffHandler) GetDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.GetDepartment(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *StaffHandler) CreateDepartment(c *gin.Context) {
	var cmd domain.CreateDepartmentCommand
	if !bindJSON(c, &cmd) {
		return
	}
	d, err := h.svc.CreateDepartment(&cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *StaffHandler) UpdateDepartment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cmd domain.UpdateDepartmentCommand
	if !bindJSON(c, &cmd) {
		return
	}
	d, err := h.svc.UpdateDepartment(id, &cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
