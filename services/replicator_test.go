package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studiofit/models"
)

func TestNextOccurrence(t *testing.T) {
	// 2024-06-03 is a Monday
	monday := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	sunday := NextOccurrence(monday, time.Sunday)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), sunday)

	// Same weekday always rolls a full week forward
	nextMonday := NextOccurrence(monday, time.Monday)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), nextMonday)

	tuesday := NextOccurrence(monday, time.Tuesday)
	assert.Equal(t, time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC), tuesday)
}

func TestMaterializeTemplate(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	template := seedTemplate(t, db, instructor.ID, time.Sunday, "07:00", "08:00", 5)

	runDate := time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)
	session, err := MaterializeTemplate(db, template, runDate)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 9, 7, 0, 0, 0, time.UTC), session.StartTime)
	assert.Equal(t, time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC), session.EndTime)
	assert.Equal(t, instructor.ID, session.InstructorID)
	assert.Equal(t, 5, session.MaxStudents)
	assert.Equal(t, models.StatusScheduled, session.Status)
	require.NotNil(t, session.RecurringClassID)
	assert.Equal(t, template.ID, *session.RecurringClassID)
}

func TestMaterializeTemplate_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	template := seedTemplate(t, db, instructor.ID, time.Sunday, "07:00", "08:00", 5)

	runDate := time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)
	_, err := MaterializeTemplate(db, template, runDate)
	require.NoError(t, err)

	// Second run for the same target week is a no-op
	_, err = MaterializeTemplate(db, template, runDate)
	assert.ErrorIs(t, err, ErrAlreadyMaterialized)

	// Rerun later in the same week hits the same target date
	_, err = MaterializeTemplate(db, template, runDate.AddDate(0, 0, 2))
	assert.ErrorIs(t, err, ErrAlreadyMaterialized)

	var count int64
	db.Model(&models.ClassSession{}).Where("recurring_class_id = ?", template.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// The following week creates the next occurrence
	_, err = MaterializeTemplate(db, template, runDate.AddDate(0, 0, 7))
	require.NoError(t, err)
	db.Model(&models.ClassSession{}).Where("recurring_class_id = ?", template.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestMaterializeTemplate_BadTimeOfDay(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	template := seedTemplate(t, db, instructor.ID, time.Sunday, "08:00", "07:00", 5)

	_, err := MaterializeTemplate(db, template, time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestReplicateUpcomingWeek(t *testing.T) {
	db := setupTestDB(t)
	ana := createInstructor(t, db, "ana")
	bruno := createInstructor(t, db, "bruno")
	seedTemplate(t, db, ana.ID, time.Sunday, "07:00", "08:00", 5)
	seedTemplate(t, db, bruno.ID, time.Wednesday, "18:00", "19:00", 8)

	// Inactive templates are never materialized
	inactive := seedTemplate(t, db, ana.ID, time.Friday, "07:00", "08:00", 5)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	runDate := time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)
	report, err := ReplicateUpcomingWeek(db, runDate)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Created)
	assert.Zero(t, report.Skipped)
	assert.Empty(t, report.Failures)
	assert.NotEmpty(t, report.RunID)

	var count int64
	db.Model(&models.ClassSession{}).Count(&count)
	assert.Equal(t, int64(2), count)

	// Running the whole batch again only skips
	report, err = ReplicateUpcomingWeek(db, runDate)
	require.NoError(t, err)
	assert.Zero(t, report.Created)
	assert.Equal(t, 2, report.Skipped)
	assert.Empty(t, report.Failures)

	db.Model(&models.ClassSession{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestReplicateUpcomingWeek_CollectsFailures(t *testing.T) {
	db := setupTestDB(t)
	ana := createInstructor(t, db, "ana")
	gone := createInstructor(t, db, "bruno")
	require.NoError(t, db.Model(gone).Update("is_active", false).Error)

	seedTemplate(t, db, ana.ID, time.Sunday, "07:00", "08:00", 5)
	broken := seedTemplate(t, db, gone.ID, time.Monday, "07:00", "08:00", 5)

	report, err := ReplicateUpcomingWeek(db, time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// The healthy template still materialized
	assert.Equal(t, 1, report.Created)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, broken.ID, report.Failures[0].TemplateID)
	assert.Contains(t, report.Failures[0].Reason, "inactive")

	var count int64
	db.Model(&models.ClassSession{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func seedTemplate(t *testing.T, db *gorm.DB, instructorID uint, day time.Weekday, start, end string, maxStudents int) *models.RecurringClass {
	t.Helper()
	template := models.RecurringClass{
		Title:          "Mat Pilates",
		InstructorID:   instructorID,
		DayOfWeek:      int(day),
		StartTimeOfDay: start,
		EndTimeOfDay:   end,
		MaxStudents:    maxStudents,
		IsActive:       true,
	}
	if err := db.Create(&template).Error; err != nil {
		t.Fatalf("failed to create template: %v", err)
	}
	return &template
}
