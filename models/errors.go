package models

import (
	"errors"
	"fmt"
)

var (
	// Validation errors (all match ErrValidation)
	ErrValidation           = errors.New("validation failed")
	ErrMissingField         = fmt.Errorf("%w: missing required field", ErrValidation)
	ErrInvalidEnum          = fmt.Errorf("%w: value not in allowed set", ErrValidation)
	ErrInvalidTimeFormat    = fmt.Errorf("%w: time must be HH:MM in 24-hour format", ErrValidation)
	ErrInvalidTimeRange     = fmt.Errorf("%w: end time must be after start time", ErrValidation)
	ErrInvalidAttendeeCount = fmt.Errorf("%w: expected attendees must be at least 1", ErrValidation)

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrAlreadyReviewed      = errors.New("booking has already been reviewed")
	ErrSlotConflict         = errors.New("venue is already booked for the selected time slot")
	ErrMissingReason        = errors.New("rejection reason is required")
	ErrCannotCancelApproved = errors.New("cannot cancel an approved booking")

	// Auth / user errors
	ErrForbidden          = errors.New("not authorized to perform this action")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrStudentNotFound    = errors.New("student not found")

	// Attendance / announcement errors
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrEditWindowClosed     = errors.New("edit window has passed")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// SlotConflictError names the approved booking that blocks an approval, so
// an admin can resolve the clash manually.
type SlotConflictError struct {
	Conflicting *Booking
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s is already booked from %s to %s for %q",
		e.Conflicting.Venue, e.Conflicting.StartTime, e.Conflicting.EndTime, e.Conflicting.EventName)
}

func (e *SlotConflictError) Unwrap() error { return ErrSlotConflict }
