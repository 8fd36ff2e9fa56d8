package models

import (
	"time"

	"gorm.io/gorm"
)

// Staff roles. Anything else is rejected at the boundary.
const (
	RoleAdmin      = "ADMIN"
	RoleInstructor = "INSTRUCTOR"
)

type User struct {
	gorm.Model
	Name      string     `json:"name" gorm:"default:''"`
	Email     string     `json:"email" gorm:"unique;not null"`
	Mobile    string     `json:"mobile" gorm:"default:''"`
	Role      string     `json:"role" gorm:"default:'INSTRUCTOR'"` // ADMIN, INSTRUCTOR
	Password  string     `json:"-" gorm:"not null"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	LastLogin *time.Time `json:"last_login"`
	IsDeleted bool       `json:"is_deleted" gorm:"default:false"`
}

// IsValidRole reports whether the given role string is one of the known roles
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleInstructor
}
