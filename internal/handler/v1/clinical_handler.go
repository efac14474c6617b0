package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/service"
)

type MedicalRecordHandler struct {
	svc *service.MedicalRecordService
}

func NewMedicalRecordHandler(svc *service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{svc: svc}
}

func (h *MedicalRecordHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListRecords())
}

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	r, err := h.svc.GetRecord(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var cmd domain.CreateMedicalRecordCommand
	if !bindJSON(c, &cmd) {
		return
	}
	r, err := h.svc.CreateRecord(&cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *MedicalRecordHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cmd domain.UpdateMedicalRecordCommand
	if !bindJSON(c, &cmd) {
		return
	}
	r, err := h.svc.UpdateRecord(id, &cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *MedicalRecordHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patientId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.ListByPatient(patientID))
}

type PrescriptionHandler struct {
	svc *service.PrescriptionService
}

func NewPrescriptionHandler(svc *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc}
}

func (h *PrescriptionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListPrescriptions())
}

func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.svc.GetPrescription(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PrescriptionHandler) Create(c *gin.Context) {
	var cmd domain.CreatePrescriptionCommand
	if !bindJSON(c, &cmd) {
		return
	}
	p, err := h.svc.IssuePrescription(&cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var cmd domain.UpdatePrescriptionCommand
	if !bindJSON(c, &cmd) {
		return
	}
	p, err := h.svc.UpdatePrescription(id, &cmd, callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PrescriptionHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "patientId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.ListByPatient(patientID))
}
