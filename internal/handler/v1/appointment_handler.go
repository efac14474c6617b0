package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
)

type AppointmentHandler struct {
	svc *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListAppointments())
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetAppointment(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var cmd domain.CreateAppointmentCommand
	if !bindJSON(c, &cmd) {
		return
	}
	a, err := h.svc.ScheduleAppointment(&cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cmd domain.UpdateAppointmentCommand
	if !bindJSON(c, &cmd) {
		return
	}
	a, err := h.svc.UpdateAppointment(id, &cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "doctorId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.ListByDoctor(doctorID))
}

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patientId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.ListByPatient(patientID))
}
