package models

import "gorm.io/gorm"

// Enrollment links a student to a class session. The pair is unique; removal
// is a hard delete so the student can enroll again later.
type Enrollment struct {
	gorm.Model
	ClassSessionID uint `json:"class_session_id" gorm:"uniqueIndex:idx_class_student;not null"`
	StudentID      uint `json:"student_id" gorm:"uniqueIndex:idx_class_student;not null"`
}
