package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"college-backend/models"
)

var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// BookingInput is a booking candidate before validation and persistence.
type BookingInput struct {
	Venue             string
	EventName         string
	Description       string
	Date              time.Time
	StartTime         string
	EndTime           string
	Department        string
	ContactNumber     string
	ExpectedAttendees int
	EquipmentNeeded   []string
}

// BookingValidator rejects structurally invalid candidates before they
// reach persistence or conflict checking. Validate is pure.
type BookingValidator struct {
	catalog *models.Catalog
}

func NewBookingValidator(catalog *models.Catalog) *BookingValidator {
	return &BookingValidator{catalog: catalog}
}

func (v *BookingValidator) Validate(in *BookingInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"venue", in.Venue},
		{"eventName", in.EventName},
		{"description", in.Description},
		{"startTime", in.StartTime},
		{"endTime", in.EndTime},
		{"department", in.Department},
		{"contactNumber", in.ContactNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", models.ErrMissingField, f.name)
		}
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date", models.ErrMissingField)
	}

	if !v.catalog.IsValidVenue(in.Venue) {
		return fmt.Errorf("%w: venue %q", models.ErrInvalidEnum, in.Venue)
	}
	if !v.catalog.IsValidDepartment(in.Department) {
		return fmt.Errorf("%w: department %q", models.ErrInvalidEnum, in.Department)
	}
	for _, eq := range in.EquipmentNeeded {
		if !v.catalog.IsValidEquipment(eq) {
			return fmt.Errorf("%w: equipment %q", models.ErrInvalidEnum, eq)
		}
	}

	if !timePattern.MatchString(in.StartTime) {
		return fmt.Errorf("%w: startTime %q", models.ErrInvalidTimeFormat, in.StartTime)
	}
	if !timePattern.MatchString(in.EndTime) {
		return fmt.Errorf("%w: endTime %q", models.ErrInvalidTimeFormat, in.EndTime)
	}
	if padTime(in.EndTime) <= padTime(in.StartTime) {
		return models.ErrInvalidTimeRange
	}

	if in.ExpectedAttendees < 1 {
		return models.ErrInvalidAttendeeCount
	}
	return nil
}

// padTime zero-pads a single-digit hour ("9:30" -> "09:30") so that
// lexicographic comparison of HH:MM strings stays correct.
func padTime(t string) string {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}
