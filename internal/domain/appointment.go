package domain

import (
	"errors"
	"time"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
)

// Status transitions are caller-driven; the store enforces no state machine.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCancelled, AppointmentCompleted:
		return true
	}
	return false
}

type Appointment struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PatientID int64 `json:"patient_id"`
	DoctorID  int64 `json:"doctor_id"`

	AppointmentDate time.Time         `json:"appointment_date"`
	Purpose         string            `json:"purpose,omitempty"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
}

type CreateAppointmentCommand struct {
	PatientID       int64             `json:"patient_id" binding:"required"`
	DoctorID        int64             `json:"doctor_id" binding:"required"`
	AppointmentDate time.Time         `json:"appointment_date" binding:"required"`
	Purpose         string            `json:"purpose"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes"`
}

type UpdateAppointmentCommand struct {
	PatientID       *int64             `json:"patient_id"`
	DoctorID        *int64             `json:"doctor_id"`
	AppointmentDate *time.Time         `json:"appointment_date"`
	Purpose         *string            `json:"purpose"`
	Status          *AppointmentStatus `json:"status"`
	Notes           *string            `json:"notes"`
}
