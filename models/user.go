package models

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// User is a portal account. Branch is only meaningful for students.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"size:255;uniqueIndex" json:"email"`
	Password string `gorm:"size:255" json:"-"`
	Role     Role   `gorm:"size:16;default:student;index" json:"role"`
	Branch   string `gorm:"size:16" json:"branch,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
