package domain

import (
	"errors"
	"time"
)

var ErrActivityLogNotFound = errors.New("activity log not found")

// ActivityLog is append-only: entries are never updated or deleted.
type ActivityLog struct {
	ID int64 `json:"id"`

	UserID    *int64 `json:"user_id,omitempty"`
	PatientID *int64 `json:"patient_id,omitempty"`

	// ActivityType is a free-form tag, e.g. "registration", "appointment".
	ActivityType string `json:"activity_type"`
	Description  string `json:"description"`

	// Timestamp is assigned by the store exactly once, at creation.
	Timestamp time.Time `json:"timestamp"`

	Details map[string]any `json:"details,omitempty"`
}

type CreateActivityLogCommand struct {
	UserID       *int64         `json:"user_id"`
	PatientID    *int64         `json:"patient_id"`
	ActivityType string         `json:"activity_type" binding:"required"`
	Description  string         `json:"description"`
	Details      map[string]any `json:"details"`
}
