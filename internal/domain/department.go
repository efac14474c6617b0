package domain

import (
	"errors"
	"time"
)

var ErrDepartmentNotFound = errors.New("department not found")

// Department occupancy and staff utilization are 0-100 percentages
// maintained by callers; the store does not derive them.
type Department struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	Capacity         int    `json:"capacity"`
	Occupancy        int    `json:"occupancy"`
	StaffUtilization int    `json:"staff_utilization"`
}

type CreateDepartmentCommand struct {
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	Capacity         int    `json:"capacity" binding:"min=0"`
	Occupancy        int    `json:"occupancy" binding:"min=0,max=100"`
	StaffUtilization int    `json:"staff_utilization" binding:"min=0,max=100"`
}

type UpdateDepartmentCommand struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Capacity         *int    `json:"capacity" binding:"omitempty,min=0"`
	Occupancy        *int    `json:"occupancy" binding:"omitempty,min=0,max=100"`
	StaffUtilization *int    `json:"staff_utilization" binding:"omitempty,min=0,max=100"`
}
