package domain

import (
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("medical record not found")

type Vitals struct {
	BloodPressureSystolic  *int     `json:"bp_systolic,omitempty"`
	BloodPressureDiastolic *int     `json:"bp_diastolic,omitempty"`
	HeartRateBPM           *int     `json:"heart_rate_bpm,omitempty"`
	TemperatureCelsius     *float64 `json:"temperature_celsius,omitempty"`
	WeightKg               *float64 `json:"weight_kg,omitempty"`
	HeightCm               *float64 `json:"height_cm,omitempty"`
	OxygenSaturation       *float64 `json:"oxygen_saturation,omitempty"`
	RespiratoryRate        *int     `json:"respiratory_rate_bpm,omitempty"`
}

// Attachment references an externally stored file (e.g. a lab report PDF).
type Attachment struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url"`
}

type MedicalRecord struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	PatientID int64 `json:"patient_id"`
	DoctorID  int64 `json:"doctor_id"`

	// RecordDate is assigned by the store exactly once, at creation.
	RecordDate time.Time `json:"record_date"`

	Diagnosis   string       `json:"diagnosis,omitempty"`
	Symptoms    []string     `json:"symptoms,omitempty"`
	Treatment   string       `json:"treatment,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Vitals      *Vitals      `json:"vitals,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type CreateMedicalRecordCommand struct {
	PatientID   int64        `json:"patient_id" binding:"required"`
	DoctorID    int64        `json:"doctor_id" binding:"required"`
	Diagnosis   string       `json:"diagnosis"`
	Symptoms    []string     `json:"symptoms"`
	Treatment   string       `json:"treatment"`
	Notes       string       `json:"notes"`
	Vitals      *Vitals      `json:"vitals"`
	Attachments []Attachment `json:"attachments"`
}

// UpdateMedicalRecordCommand carries a partial update; RecordDate is
// write-once and not reachable here.
type UpdateMedicalRecordCommand struct {
	PatientID   *int64        `json:"patient_id"`
	DoctorID    *int64        `json:"doctor_id"`
	Diagnosis   *string       `json:"diagnosis"`
	Symptoms    *[]string     `json:"symptoms"`
	Treatment   *string       `json:"treatment"`
	Notes       *string       `json:"notes"`
	Vitals      *Vitals       `json:"vitals"`
	Attachments *[]Attachment `json:"attachments"`
}
