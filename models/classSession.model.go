package models

import (
	"time"

	"gorm.io/gorm"
)

// Class session statuses. COMPLETED and CANCELLED are terminal.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// ClassSession is one concrete scheduled class, bound to a time range and an
// instructor. Sessions created by the recurring scheduler carry the template
// reference and the class date; the pair is unique so a template materializes
// at most once per date.
type ClassSession struct {
	gorm.Model
	Title            string     `json:"title" gorm:"not null"`
	StartTime        time.Time  `json:"start_time" gorm:"index;not null"`
	EndTime          time.Time  `json:"end_time" gorm:"not null"`
	InstructorID     uint       `json:"instructor_id" gorm:"index;not null"`
	MaxStudents      int        `json:"max_students" gorm:"not null"`
	Status           string     `json:"status" gorm:"default:'SCHEDULED'"` // SCHEDULED, COMPLETED, CANCELLED
	RecurringClassID *uint      `json:"recurring_class_id" gorm:"uniqueIndex:idx_recurring_class_date"`
	ClassDate        *time.Time `json:"class_date" gorm:"uniqueIndex:idx_recurring_class_date"`
	IsDeleted        bool       `json:"is_deleted" gorm:"default:false"`
}

// IsTerminal reports whether the session status permits no further transitions
func (s *ClassSession) IsTerminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}
