package models

import "gorm.io/gorm"

// RecurringClass is a weekly recurrence template. The scheduler materializes
// one ClassSession per active template for the upcoming occurrence; the
// template itself never tracks its sessions for mutation.
type RecurringClass struct {
	gorm.Model
	Title          string `json:"title" gorm:"not null"`
	InstructorID   uint   `json:"instructor_id" gorm:"index;not null"`
	DayOfWeek      int    `json:"day_of_week" gorm:"not null"` // 0 = Sunday, 6 = Saturday
	StartTimeOfDay string `json:"start_time_of_day" gorm:"not null"` // "HH:MM"
	EndTimeOfDay   string `json:"end_time_of_day" gorm:"not null"`   // "HH:MM"
	MaxStudents    int    `json:"max_students" gorm:"not null"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
	IsDeleted      bool   `json:"is_deleted" gorm:"default:false"`
}
