package services

import (
	"errors"

	"gorm.io/gorm"

	"studiofit/models"
)

// EnrolledCount returns the current roster size of a session
func EnrolledCount(db *gorm.DB, sessionID uint) (int, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("class_session_id = ?", sessionID).
		Count(&count).Error
	return int(count), err
}

// HasSpace reports whether the session can take one more student. Always
// recomputed from the roster, never cached on the session.
func HasSpace(db *gorm.DB, session *models.ClassSession) (bool, error) {
	count, err := EnrolledCount(db, session.ID)
	if err != nil {
		return false, err
	}
	return count < session.MaxStudents, nil
}

// RosterNames returns the enrolled students' names in enrollment order
func RosterNames(db *gorm.DB, sessionID uint) ([]string, error) {
	names := []string{}
	err := db.Model(&models.Enrollment{}).
		Joins("JOIN students ON students.id = enrollments.student_id").
		Where("enrollments.class_session_id = ?", sessionID).
		Order("enrollments.id asc").
		Pluck("students.name", &names).Error
	return names, err
}

// EnrollStudent adds the student to the class roster. The capacity check and
// the roster insert run under the session lock inside one transaction, so two
// concurrent requests for the last spot cannot both succeed.
func EnrollStudent(db *gorm.DB, sessionID, studentID uint) (*models.Enrollment, error) {
	mu := lockSession(sessionID)
	defer mu.Unlock()

	var enrollment models.Enrollment
	err := db.Transaction(func(tx *gorm.DB) error {
		var session models.ClassSession
		if err := tx.First(&session, sessionID).Error; err != nil {
			return err
		}
		if session.Status != models.StatusScheduled {
			return ErrInvalidState
		}

		var count int64
		if err := tx.Model(&models.Enrollment{}).
			Where("class_session_id = ?", sessionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(session.MaxStudents) {
			return ErrCapacityExceeded
		}

		var existing models.Enrollment
		err := tx.Where("class_session_id = ? AND student_id = ?", sessionID, studentID).
			First(&existing).Error
		if err == nil {
			return ErrDuplicateEnrollment
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		enrollment = models.Enrollment{ClassSessionID: sessionID, StudentID: studentID}
		return tx.Create(&enrollment).Error
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// RemoveStudent takes the student off the class roster. The row is hard
// deleted so the unique (session, student) pair stays re-usable.
func RemoveStudent(db *gorm.DB, sessionID, studentID uint) error {
	mu := lockSession(sessionID)
	defer mu.Unlock()

	return db.Transaction(func(tx *gorm.DB) error {
		var enrollment models.Enrollment
		err := tx.Where("class_session_id = ? AND student_id = ?", sessionID, studentID).
			First(&enrollment).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotEnrolled
			}
			return err
		}
		return tx.Unscoped().Delete(&enrollment).Error
	})
}
