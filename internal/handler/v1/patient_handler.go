package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func (h *PatientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListPatients())
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetPatient(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Lookup resolves the human-facing business key, e.g. "PT-12345".
func (h *PatientHandler) Lookup(c *gin.Context) {
	p, err := h.svc.GetPatientByPatientID(c.Param("patientId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var cmd domain.CreatePatientCommand
	if !bindJSON(c, &cmd) {
		return
	}
	p, err := h.svc.RegisterPatient(&cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cmd domain.UpdatePatientCommand
	if !bindJSON(c, &cmd) {
		return
	}
	p, err := h.svc.UpdatePatient(id, &cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
