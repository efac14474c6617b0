package domain

import (
	"errors"
	"time"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
)

type TaskPriority string

const (
	TaskPriorityUrgent   TaskPriority = "urgent"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityStandard TaskPriority = "standard"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityUrgent, TaskPriorityMedium, TaskPriorityStandard:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	return s == TaskPending || s == TaskCompleted
}

type Task struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	DueDate  *time.Time   `json:"due_date,omitempty"`
	Priority TaskPriority `json:"priority"`
	Status   TaskStatus   `json:"status"`

	RelatedPatientID *int64 `json:"related_patient_id,omitempty"`
}

type CreateTaskCommand struct {
	UserID           int64        `json:"user_id" binding:"required"`
	Title            string       `json:"title" binding:"required"`
	Description      string       `json:"description"`
	DueDate          *time.Time   `json:"due_date"`
	Priority         TaskPriority `json:"priority"`
	Status           TaskStatus   `json:"status"`
	RelatedPatientID *int64       `json:"related_patient_id"`
}

type UpdateTaskCommand struct {
	UserID           *int64        `json:"user_id"`
	Title            *string       `json:"title"`
	Description      *string       `json:"description"`
	DueDate          *time.Time    `json:"due_date"`
	Priority         *TaskPriority `json:"priority"`
	Status           *TaskStatus   `json:"status"`
	RelatedPatientID *int64        `json:"related_patient_id"`
}
