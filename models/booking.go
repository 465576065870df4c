package models

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Booking is a request to reserve a venue for a time slot on a single day.
// StartTime/EndTime are zero-padded HH:MM strings; the half-open interval
// [StartTime, EndTime) can therefore be compared lexicographically.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Venue       string `gorm:"size:100;index:idx_slot,priority:1" json:"venue"`
	EventName   string `gorm:"size:255" json:"eventName"`
	Description string `gorm:"size:2000" json:"description"`

	Date      time.Time `gorm:"type:date;index:idx_slot,priority:2" json:"date"`
	StartTime string    `gorm:"size:5" json:"startTime"`
	EndTime   string    `gorm:"size:5" json:"endTime"`

	BookedByID uint `gorm:"index;column:booked_by_id" json:"booked_by_id"`
	BookedBy   User `gorm:"foreignKey:BookedByID" json:"bookedBy,omitempty"`

	Department        string         `gorm:"size:32" json:"department"`
	ContactNumber     string         `gorm:"size:32" json:"contactNumber"`
	ExpectedAttendees int            `json:"expectedAttendees"`
	EquipmentNeeded   datatypes.JSON `gorm:"column:equipment_needed" json:"equipmentNeeded,omitempty"`

	Status BookingStatus `gorm:"size:16;default:pending;index:idx_slot,priority:3" json:"status"`

	ReviewedByID    *uint      `gorm:"column:reviewed_by_id" json:"reviewed_by_id,omitempty"`
	ReviewedBy      *User      `gorm:"foreignKey:ReviewedByID" json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `gorm:"size:500" json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Overlaps reports whether the booking's interval overlaps [start, end).
// Boundary-touching slots (end == other start) do not overlap.
func (b *Booking) Overlaps(start, end string) bool {
	return start < b.EndTime && end > b.StartTime
}
