package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"studiofit/config"
	"studiofit/models"
)

// ValidateTimeRange checks that a class ends strictly after it starts
func ValidateTimeRange(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidTimeRange
	}
	return nil
}

// CreateSession creates a single scheduled class session
func CreateSession(db *gorm.DB, title string, start, end time.Time, instructorID uint, maxStudents int) (*models.ClassSession, error) {
	if err := ValidateTimeRange(start, end); err != nil {
		return nil, err
	}
	session := models.ClassSession{
		Title:        title,
		StartTime:    start,
		EndTime:      end,
		InstructorID: instructorID,
		MaxStudents:  maxStudents,
		Status:       models.StatusScheduled,
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSessionTimes moves a scheduled session to a new time range. The range
// is re-validated and completed or cancelled sessions cannot be moved.
func UpdateSessionTimes(db *gorm.DB, sessionID uint, start, end time.Time) (*models.ClassSession, error) {
	if err := ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	mu := lockSession(sessionID)
	defer mu.Unlock()

	var session models.ClassSession
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, sessionID).Error; err != nil {
			return err
		}
		if session.IsTerminal() {
			return ErrInvalidState
		}
		session.StartTime = start
		session.EndTime = end
		return tx.Save(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CompleteSession transitions a scheduled session to COMPLETED and records the
// instructor's pending commission for it
func CompleteSession(db *gorm.DB, sessionID uint) (*models.ClassSession, error) {
	return transitionSession(db, sessionID, models.StatusCompleted)
}

// CancelSession transitions a scheduled session to CANCELLED. The session is
// never deleted; history keeps referencing it.
func CancelSession(db *gorm.DB, sessionID uint) (*models.ClassSession, error) {
	return transitionSession(db, sessionID, models.StatusCancelled)
}

// transitionSession applies a status change under the session lock. SCHEDULED
// is the only state with outgoing transitions.
func transitionSession(db *gorm.DB, sessionID uint, target string) (*models.ClassSession, error) {
	mu := lockSession(sessionID)
	defer mu.Unlock()

	var session models.ClassSession
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&session, sessionID).Error; err != nil {
			return err
		}
		if session.Status != models.StatusScheduled {
			return ErrInvalidTransition
		}
		session.Status = target
		if err := tx.Save(&session).Error; err != nil {
			return err
		}
		if target == models.StatusCompleted {
			return createCommission(tx, &session)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// createCommission records the pending commission for a completed session.
// The session ID is unique on commissions, so a duplicate insert is skipped.
func createCommission(tx *gorm.DB, session *models.ClassSession) error {
	var existing models.Commission
	err := tx.Where("class_session_id = ?", session.ID).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	commission := models.Commission{
		InstructorID:   session.InstructorID,
		ClassSessionID: session.ID,
		Amount:         config.AppConfig.ClassCommission,
		Status:         models.CommissionPending,
	}
	return tx.Create(&commission).Error
}
