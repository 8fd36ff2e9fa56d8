package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiofit/models"
)

func TestCreateSession_RejectsBadTimeRange(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")

	start := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	_, err := CreateSession(db, "Mat Pilates", start, start.Add(-time.Hour), instructor.ID, 5)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	// Zero-length classes are rejected too
	_, err = CreateSession(db, "Mat Pilates", start, start, instructor.ID, 5)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	var count int64
	db.Model(&models.ClassSession{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateSessionTimes(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 5)

	newStart := session.StartTime.Add(2 * time.Hour)

	_, err := UpdateSessionTimes(db, session.ID, newStart, newStart.Add(-time.Minute))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	updated, err := UpdateSessionTimes(db, session.ID, newStart, newStart.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, updated.EndTime.After(updated.StartTime))
	assert.True(t, updated.StartTime.Equal(newStart))
}

func TestUpdateSessionTimes_TerminalSessionRejected(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 5)

	_, err := CancelSession(db, session.ID)
	require.NoError(t, err)

	newStart := session.StartTime.Add(time.Hour)
	_, err = UpdateSessionTimes(db, session.ID, newStart, newStart.Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteSession_RecordsCommission(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 5)

	completed, err := CompleteSession(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, completed.Status)

	var commission models.Commission
	require.NoError(t, db.Where("class_session_id = ?", session.ID).First(&commission).Error)
	assert.Equal(t, instructor.ID, commission.InstructorID)
	assert.Equal(t, models.CommissionPending, commission.Status)
	assert.Greater(t, commission.Amount, 0.0)
}

func TestCancelSession(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 5)

	cancelled, err := CancelSession(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	// Cancellation is a status change, the row stays
	var stored models.ClassSession
	require.NoError(t, db.First(&stored, session.ID).Error)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	// No commission for cancelled classes
	var count int64
	db.Model(&models.Commission{}).Where("class_session_id = ?", session.ID).Count(&count)
	assert.Zero(t, count)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")

	completed := createScheduledSession(t, db, instructor.ID, 5)
	_, err := CompleteSession(db, completed.ID)
	require.NoError(t, err)

	_, err = CancelSession(db, completed.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = CompleteSession(db, completed.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	cancelled := createScheduledSession(t, db, instructor.ID, 5)
	_, err = CancelSession(db, cancelled.ID)
	require.NoError(t, err)

	_, err = CompleteSession(db, cancelled.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Status unchanged after the failed attempts
	var stored models.ClassSession
	require.NoError(t, db.First(&stored, completed.ID).Error)
	assert.Equal(t, models.StatusCompleted, stored.Status)
}
