package domain

import (
	"errors"
	"time"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrPatientAlreadyExists = errors.New("patient with this patient ID already exists")
	ErrInvalidGender        = errors.New("invalid gender value")
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type Patient struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// PatientID is the human-facing business key, e.g. "PT-12345".
	// Uniqueness is advisory; the store does not enforce it.
	PatientID string `json:"patient_id"`

	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      Gender    `json:"gender"`
	BloodType   string    `json:"blood_type,omitempty"`
	Address     string    `json:"address,omitempty"`

	Allergies      []string `json:"allergies,omitempty"`
	MedicalHistory []string `json:"medical_history,omitempty"`

	// RegistrationDate is assigned by the store exactly once, at creation.
	RegistrationDate time.Time `json:"registration_date"`

	Avatar string `json:"avatar,omitempty"`
}

type CreatePatientCommand struct {
	PatientID      string    `json:"patient_id" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	Email          string    `json:"email" binding:"omitempty,email"`
	Phone          string    `json:"phone"`
	DateOfBirth    time.Time `json:"date_of_birth" binding:"required"`
	Gender         Gender    `json:"gender" binding:"required"`
	BloodType      string    `json:"blood_type"`
	Address        string    `json:"address"`
	Allergies      []string  `json:"allergies"`
	MedicalHistory []string  `json:"medical_history"`
	Avatar         string    `json:"avatar"`
}

// UpdatePatientCommand carries a partial update; nil fields are left
// unchanged. RegistrationDate is deliberately absent: it is write-once.
type UpdatePatientCommand struct {
	PatientID      *string    `json:"patient_id"`
	Name           *string    `json:"name"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	Phone          *string    `json:"phone"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Gender         *Gender    `json:"gender"`
	BloodType      *string    `json:"blood_type"`
	Address        *string    `json:"address"`
	Allergies      *[]string  `json:"allergies"`
	MedicalHistory *[]string  `json:"medical_history"`
	Avatar         *string    `json:"avatar"`
}
