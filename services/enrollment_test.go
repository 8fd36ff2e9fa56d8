package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiofit/models"
)

func TestEnrollStudent(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 2)
	student := createStudent(t, db, "alice")

	enrollment, err := EnrollStudent(db, session.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, enrollment.ClassSessionID)
	assert.Equal(t, student.ID, enrollment.StudentID)

	count, err := EnrolledCount(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnrollStudent_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 5)
	student := createStudent(t, db, "alice")

	_, err := EnrollStudent(db, session.ID, student.ID)
	require.NoError(t, err)

	_, err = EnrollStudent(db, session.ID, student.ID)
	assert.ErrorIs(t, err, ErrDuplicateEnrollment)

	// Roster unchanged
	count, err := EnrolledCount(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnrollStudent_CapacityExceeded(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 1)

	_, err := EnrollStudent(db, session.ID, createStudent(t, db, "alice").ID)
	require.NoError(t, err)

	_, err = EnrollStudent(db, session.ID, createStudent(t, db, "bob").ID)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	count, err := EnrolledCount(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestEnrollStudent_TerminalSessionRejected(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	student := createStudent(t, db, "alice")

	completed := createScheduledSession(t, db, instructor.ID, 5)
	_, err := CompleteSession(db, completed.ID)
	require.NoError(t, err)

	_, err = EnrollStudent(db, completed.ID, student.ID)
	assert.ErrorIs(t, err, ErrInvalidState)

	cancelled := createScheduledSession(t, db, instructor.ID, 5)
	_, err = CancelSession(db, cancelled.ID)
	require.NoError(t, err)

	_, err = EnrollStudent(db, cancelled.ID, student.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestRemoveStudent(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 3)
	alice := createStudent(t, db, "alice")
	bob := createStudent(t, db, "bob")

	_, err := EnrollStudent(db, session.ID, alice.ID)
	require.NoError(t, err)
	_, err = EnrollStudent(db, session.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, RemoveStudent(db, session.ID, alice.ID))

	names, err := RosterNames(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, names)

	// Removed student can enroll again
	_, err = EnrollStudent(db, session.ID, alice.ID)
	require.NoError(t, err)
}

func TestRemoveStudent_NotEnrolled(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 3)
	alice := createStudent(t, db, "alice")
	bob := createStudent(t, db, "bob")
	carol := createStudent(t, db, "carol")

	_, err := EnrollStudent(db, session.ID, alice.ID)
	require.NoError(t, err)
	_, err = EnrollStudent(db, session.ID, bob.ID)
	require.NoError(t, err)

	err = RemoveStudent(db, session.ID, carol.ID)
	assert.ErrorIs(t, err, ErrNotEnrolled)

	names, err := RosterNames(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names)

	// Enrolling carol fills the last spot
	_, err = EnrollStudent(db, session.ID, carol.ID)
	require.NoError(t, err)

	names, err = RosterNames(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)

	var session2 models.ClassSession
	require.NoError(t, db.First(&session2, session.ID).Error)
	hasSpace, err := HasSpace(db, &session2)
	require.NoError(t, err)
	assert.False(t, hasSpace)
}

func TestHasSpace_RecomputedFromRoster(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 1)
	alice := createStudent(t, db, "alice")

	hasSpace, err := HasSpace(db, session)
	require.NoError(t, err)
	assert.True(t, hasSpace)

	_, err = EnrollStudent(db, session.ID, alice.ID)
	require.NoError(t, err)

	hasSpace, err = HasSpace(db, session)
	require.NoError(t, err)
	assert.False(t, hasSpace)

	require.NoError(t, RemoveStudent(db, session.ID, alice.ID))

	hasSpace, err = HasSpace(db, session)
	require.NoError(t, err)
	assert.True(t, hasSpace)
}

func TestEnrollStudent_ConcurrentLastSpot(t *testing.T) {
	db := setupTestDB(t)
	instructor := createInstructor(t, db, "ana")
	session := createScheduledSession(t, db, instructor.ID, 1)
	alice := createStudent(t, db, "alice")
	bob := createStudent(t, db, "bob")

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, studentID := range []uint{alice.ID, bob.ID} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := EnrollStudent(db, session.ID, id)
			errs <- err
		}(studentID)
	}
	wg.Wait()
	close(errs)

	var successes, capacityFailures int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrCapacityExceeded):
			capacityFailures++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, capacityFailures)

	count, err := EnrolledCount(db, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
