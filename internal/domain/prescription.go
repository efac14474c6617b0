package domain

import (
	"errors"
	"time"
)

var (
	ErrPrescriptionNotFound      = errors.New("prescription not found")
	ErrInvalidPrescriptionStatus = errors.New("invalid prescription status")
	ErrMedicationsRequired       = errors.New("at least one medication is required")
)

type PrescriptionStatus string

const (
	PrescriptionActive    PrescriptionStatus = "active"
	PrescriptionCompleted PrescriptionStatus = "completed"
	PrescriptionCancelled PrescriptionStatus = "cancelled"
)

func (s PrescriptionStatus) IsValid() bool {
	switch s {
	case PrescriptionActive, PrescriptionCompleted, PrescriptionCancelled:
		return true
	}
	return false
}

type Medication struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage" binding:"required"`    // e.g. "500mg"
	Frequency string `json:"frequency" binding:"required"` // e.g. "twice daily"
	Duration  string `json:"duration,omitempty"`           // e.g. "7 days"
	Notes     string `json:"notes,omitempty"`
}

type Prescription struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PatientID int64 `json:"patient_id"`
	DoctorID  int64 `json:"doctor_id"`

	// IssueDate is assigned by the store exactly once, at creation.
	IssueDate time.Time `json:"issue_date"`

	Medications  []Medication       `json:"medications"`
	Instructions string             `json:"instructions,omitempty"`
	Status       PrescriptionStatus `json:"status"`
}

type CreatePrescriptionCommand struct {
	PatientID    int64              `json:"patient_id" binding:"required"`
	DoctorID     int64              `json:"doctor_id" binding:"required"`
	Medications  []Medication       `json:"medications" binding:"required,min=1,dive"`
	Instructions string             `json:"instructions"`
	Status       PrescriptionStatus `json:"status"`
}

type UpdatePrescriptionCommand struct {
	PatientID    *int64              `json:"patient_id"`
	DoctorID     *int64              `json:"doctor_id"`
	Medications  *[]Medication       `json:"medications"`
	Instructions *string             `json:"instructions"`
	Status       *PrescriptionStatus `json:"status"`
}
