package services

import (
	"time"

	"gorm.io/gorm"

	"studiofit/models"
)

// TimeRange is an inclusive window over session start times
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// CalendarEvent is the shape consumed by the calendar frontend. Field names
// and the color mapping are part of the external contract.
type CalendarEvent struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	Start          string   `json:"start"`
	End            string   `json:"end"`
	Color          string   `json:"color"`
	InstructorID   uint     `json:"instructor_id"`
	InstructorName string   `json:"instructor_name"`
	Status         string   `json:"status"`
	StatusLabel    string   `json:"status_label"`
	EnrolledCount  int      `json:"enrolled_count"`
	MaxStudents    int      `json:"max_students"`
	HasSpace       bool     `json:"has_space"`
	Students       []string `json:"students"`
}

var statusColors = map[string]string{
	models.StatusScheduled: "blue",
	models.StatusCompleted: "green",
	models.StatusCancelled: "red",
}

var statusLabels = map[string]string{
	models.StatusScheduled: "Agendada",
	models.StatusCompleted: "Concluída",
	models.StatusCancelled: "Cancelada",
}

// StatusColor maps a session status to its display color. Unknown statuses
// fall back to gray instead of failing.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "gray"
}

// StatusLabel maps a session status to its display label, falling back to the
// raw status value
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// ListEvents returns the calendar events the user is allowed to see.
// Instructors are always scoped to their own sessions and any instructor
// filter they pass is ignored; admins may narrow to one instructor. A nil
// window returns every visible session. Events come back ordered by start
// time ascending.
func ListEvents(db *gorm.DB, user *models.User, window *TimeRange, instructorFilter *uint) ([]CalendarEvent, error) {
	if user == nil || !user.IsActive || user.IsDeleted {
		return nil, ErrAccessDenied
	}

	query := db.Model(&models.ClassSession{}).Where("is_deleted = ?", false)
	switch user.Role {
	case models.RoleInstructor:
		// Policy overrides the request parameter
		query = query.Where("instructor_id = ?", user.ID)
	case models.RoleAdmin:
		if instructorFilter != nil {
			query = query.Where("instructor_id = ?", *instructorFilter)
		}
	default:
		return nil, ErrAccessDenied
	}
	if window != nil {
		query = query.Where("start_time >= ? AND start_time <= ?", window.Start, window.End)
	}

	var sessions []models.ClassSession
	if err := query.Order("start_time asc").Find(&sessions).Error; err != nil {
		return nil, err
	}

	instructorNames := make(map[uint]string)
	events := make([]CalendarEvent, 0, len(sessions))
	for i := range sessions {
		session := &sessions[i]

		name, ok := instructorNames[session.InstructorID]
		if !ok {
			var instructor models.User
			if err := db.Select("name").First(&instructor, session.InstructorID).Error; err == nil {
				name = instructor.Name
			}
			instructorNames[session.InstructorID] = name
		}

		students, err := RosterNames(db, session.ID)
		if err != nil {
			return nil, err
		}

		events = append(events, CalendarEvent{
			ID:             session.ID,
			Title:          session.Title,
			Start:          session.StartTime.Format(time.RFC3339),
			End:            session.EndTime.Format(time.RFC3339),
			Color:          StatusColor(session.Status),
			InstructorID:   session.InstructorID,
			InstructorName: name,
			Status:         session.Status,
			StatusLabel:    StatusLabel(session.Status),
			EnrolledCount:  len(students),
			MaxStudents:    session.MaxStudents,
			HasSpace:       len(students) < session.MaxStudents,
			Students:       students,
		})
	}
	return events, nil
}
