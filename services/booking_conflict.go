package services

import (
	"time"

	"college-backend/models"
	"college-backend/repositories"
)

// ConflictDetector answers whether a candidate slot overlaps an existing
// approved booking for the same venue and date. Pending and rejected
// bookings are never conflict sources.
type ConflictDetector struct {
	repo repositories.BookingRepository
}

func NewConflictDetector(repo repositories.BookingRepository) *ConflictDetector {
	return &ConflictDetector{repo: repo}
}

// FindConflict returns the first approved booking whose [start, end)
// interval overlaps the candidate's, excluding excludeID (the candidate
// itself when re-checking at approval time). Returns nil when the slot is
// clear.
func (d *ConflictDetector) FindConflict(venue string, date time.Time, startTime, endTime string, excludeID uint) (*models.Booking, error) {
	approved, err := d.repo.FindBySlot(venue, date, models.BookingStatusApproved)
	if err != nil {
		return nil, err
	}
	for i := range approved {
		other := &approved[i]
		if other.ID == excludeID {
			continue
		}
		if other.Overlaps(startTime, endTime) {
			return other, nil
		}
	}
	return nil, nil
}
