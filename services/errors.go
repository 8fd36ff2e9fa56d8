package services

import "errors"

// Domain errors returned by the scheduling and enrollment services. Controllers
// translate these to HTTP statuses; services never write responses themselves.
var (
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrCapacityExceeded    = errors.New("class is already full")
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this class")
	ErrNotEnrolled         = errors.New("student is not enrolled in this class")
	ErrInvalidState        = errors.New("class is not open for changes")
	ErrInvalidTransition   = errors.New("status change not permitted")
	ErrAccessDenied        = errors.New("access denied")
	ErrAlreadyMaterialized = errors.New("class already materialized for this date")
)
