package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("user with this username already exists")
	ErrInvalidRole   = errors.New("invalid role")
)

// User is a staff account. Doctors, nurses, receptionists and admins all
// share this record; Role distinguishes them.
type User struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`

	DepartmentID   *int64 `json:"department_id,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

type CreateUserCommand struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required,min=6"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Role           Role   `json:"role" binding:"required"`
	DepartmentID   *int64 `json:"department_id"`
	Specialization string `json:"specialization"`
	Avatar         string `json:"avatar"`
}

// UpdateUserCommand carries a partial update; nil fields are left unchanged.
// Username and password are not updatable through the generic patch path.
type UpdateUserCommand struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Role           *Role   `json:"role"`
	DepartmentID   *int64  `json:"department_id"`
	Specialization *string `json:"specialization"`
	Avatar         *string `json:"avatar"`
}
