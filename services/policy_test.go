package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studiofit/models"
)

func TestCanViewSession(t *testing.T) {
	session := &models.ClassSession{InstructorID: 7}

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"nil user denied", nil, false},
		{"admin sees all", &models.User{Role: models.RoleAdmin, IsActive: true}, true},
		{"instructor sees own", withID(&models.User{Role: models.RoleInstructor, IsActive: true}, 7), true},
		{"instructor denied for others", withID(&models.User{Role: models.RoleInstructor, IsActive: true}, 8), false},
		{"inactive admin denied", &models.User{Role: models.RoleAdmin, IsActive: false}, false},
		{"deleted admin denied", &models.User{Role: models.RoleAdmin, IsActive: true, IsDeleted: true}, false},
		{"unknown role denied", &models.User{Role: "RECEPTIONIST", IsActive: true}, false},
		{"empty role denied", &models.User{IsActive: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanViewSession(tt.user, session))
			// Manage follows the same scoping
			assert.Equal(t, tt.want, CanManageSession(tt.user, session))
		})
	}
}

func TestCanViewSession_DeactivationTakesEffectImmediately(t *testing.T) {
	session := &models.ClassSession{InstructorID: 7}
	user := withID(&models.User{Role: models.RoleInstructor, IsActive: true}, 7)

	assert.True(t, CanViewSession(user, session))

	// Flipping the flag must deny the very next check, prior grants mean nothing
	user.IsActive = false
	assert.False(t, CanViewSession(user, session))
	assert.False(t, CanManageSession(user, session))
}

func withID(u *models.User, id uint) *models.User {
	u.ID = id
	return u
}
