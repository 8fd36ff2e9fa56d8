package models

import "gorm.io/gorm"

// Commission statuses
const (
	CommissionPending = "PENDING"
	CommissionPaid    = "PAID"
)

// Commission is the amount owed to an instructor for one completed class.
// One commission per session, created when the session is completed.
type Commission struct {
	gorm.Model
	InstructorID   uint    `json:"instructor_id" gorm:"index;not null"`
	ClassSessionID uint    `json:"class_session_id" gorm:"uniqueIndex;not null"`
	Amount         float64 `json:"amount" gorm:"not null"`
	Status         string  `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID
	IsDeleted      bool    `json:"is_deleted" gorm:"default:false"`
}
