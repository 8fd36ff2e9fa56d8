package services

import "studiofit/models"

// CanViewSession reports whether the user may see the given class session.
// Admins see everything; instructors only their own sessions. An inactive,
// deleted or unknown-role user is always denied.
func CanViewSession(user *models.User, session *models.ClassSession) bool {
	if user == nil || session == nil {
		return false
	}
	if !user.IsActive || user.IsDeleted {
		return false
	}
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleInstructor:
		return session.InstructorID == user.ID
	}
	return false
}

// CanManageSession reports whether the user may mutate the given class session.
// Same scoping rules as viewing.
func CanManageSession(user *models.User, session *models.ClassSession) bool {
	return CanViewSession(user, session)
}
