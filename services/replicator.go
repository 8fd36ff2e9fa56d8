package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studiofit/models"
)

// TemplateFailure is one template that could not be materialized during a
// replication run
type TemplateFailure struct {
	TemplateID uint   `json:"template_id"`
	Title      string `json:"title"`
	Reason     string `json:"reason"`
}

// ReplicationReport summarizes one replication run. Failures are collected per
// template; one bad template never aborts the batch.
type ReplicationReport struct {
	RunID    uuid.UUID         `json:"run_id"`
	RunDate  string            `json:"run_date"`
	Created  int               `json:"created"`
	Skipped  int               `json:"skipped"`
	Failures []TemplateFailure `json:"failures"`
}

// NextOccurrence returns the first date strictly after runDate that falls on
// the given weekday, at midnight in runDate's location
func NextOccurrence(runDate time.Time, dayOfWeek time.Weekday) time.Time {
	days := (int(dayOfWeek) - int(runDate.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := runDate.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// atTimeOfDay pins an "HH:MM" clock value onto the given date
func atTimeOfDay(day time.Time, timeOfDay string) (time.Time, error) {
	layout := "15:04"
	if len(timeOfDay) == len("15:04:05") {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q", timeOfDay)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location()), nil
}

// MaterializeTemplate creates the template's class session for its next
// occurrence after runDate. The existence check and the insert share one
// transaction, keyed on (template, class date), so a second run for the same
// date returns ErrAlreadyMaterialized instead of creating a duplicate.
func MaterializeTemplate(db *gorm.DB, template *models.RecurringClass, runDate time.Time) (*models.ClassSession, error) {
	var instructor models.User
	if err := db.Where("id = ? AND is_deleted = ?", template.InstructorID, false).
		First(&instructor).Error; err != nil {
		return nil, fmt.Errorf("instructor %d not found", template.InstructorID)
	}
	if !instructor.IsActive {
		return nil, fmt.Errorf("instructor %s is inactive", instructor.Name)
	}

	classDate := NextOccurrence(runDate, time.Weekday(template.DayOfWeek))
	start, err := atTimeOfDay(classDate, template.StartTimeOfDay)
	if err != nil {
		return nil, err
	}
	end, err := atTimeOfDay(classDate, template.EndTimeOfDay)
	if err != nil {
		return nil, err
	}
	if err := ValidateTimeRange(start, end); err != nil {
		return nil, err
	}

	var session models.ClassSession
	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ClassSession{}).
			Where("recurring_class_id = ? AND class_date = ?", template.ID, classDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyMaterialized
		}
		session = models.ClassSession{
			Title:            template.Title,
			StartTime:        start,
			EndTime:          end,
			InstructorID:     template.InstructorID,
			MaxStudents:      template.MaxStudents,
			Status:           models.StatusScheduled,
			RecurringClassID: &template.ID,
			ClassDate:        &classDate,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ReplicateUpcomingWeek materializes every active template's next occurrence
// after runDate. Already materialized templates count as skipped; other
// failures are collected into the report and never abort the run.
func ReplicateUpcomingWeek(db *gorm.DB, runDate time.Time) (*ReplicationReport, error) {
	report := &ReplicationReport{
		RunID:    uuid.New(),
		RunDate:  runDate.Format("2006-01-02"),
		Failures: []TemplateFailure{},
	}

	var templates []models.RecurringClass
	if err := db.Where("is_active = ? AND is_deleted = ?", true, false).
		Find(&templates).Error; err != nil {
		return nil, err
	}

	for i := range templates {
		template := &templates[i]
		_, err := MaterializeTemplate(db, template, runDate)
		switch {
		case err == nil:
			report.Created++
		case errors.Is(err, ErrAlreadyMaterialized):
			report.Skipped++
		default:
			report.Failures = append(report.Failures, TemplateFailure{
				TemplateID: template.ID,
				Title:      template.Title,
				Reason:     err.Error(),
			})
		}
	}
	return report, nil
}
