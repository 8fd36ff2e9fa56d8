package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment statuses
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentOverdue = "OVERDUE"
)

// Payment is one billing cycle charge for a student's plan
type Payment struct {
	gorm.Model
	StudentID    uint       `json:"student_id" gorm:"index;not null"`
	PlanID       uint       `json:"plan_id" gorm:"index;not null"`
	Amount       float64    `json:"amount" gorm:"not null"`
	DueDate      time.Time  `json:"due_date" gorm:"index;not null"`
	PaidAt       *time.Time `json:"paid_at"`
	Status       string     `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, OVERDUE
	ReminderSent bool       `json:"reminder_sent" gorm:"default:false"`
	IsDeleted    bool       `json:"is_deleted" gorm:"default:false"`
}
