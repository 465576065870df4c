package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"college-backend/models"
	"college-backend/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// BookingService is the entry point for the booking workflow: it composes
// the validator, the conflict detector and the repository, and enforces
// role-based authorization and visibility.
//
// Conflicts are deliberately not checked at creation time: overlapping
// pending requests may coexist, and the approval transition is the sole
// arbiter of which one becomes approved.
type BookingService struct {
	repo      repositories.BookingRepository
	validator *BookingValidator
	conflicts *ConflictDetector

	// slotMu serializes the approve-time conflict re-check per (venue, date)
	// so two racing approvals of overlapping pending bookings cannot both
	// succeed. MySQL cannot express "no overlapping row exists" inside a
	// single UPDATE on the same table, and this is a single-process service.
	mu        sync.Mutex
	slotLocks map[string]*sync.Mutex
}

func NewBookingService(repo repositories.BookingRepository, catalog *models.Catalog) *BookingService {
	return &BookingService{
		repo:      repo,
		validator: NewBookingValidator(catalog),
		conflicts: NewConflictDetector(repo),
		slotLocks: make(map[string]*sync.Mutex),
	}
}

// SlotInfo is the availability projection: enough for a caller to see
// existing claims on a venue/date without exposing whole records.
type SlotInfo struct {
	StartTime string               `json:"startTime"`
	EndTime   string               `json:"endTime"`
	Status    models.BookingStatus `json:"status"`
	EventName string               `json:"eventName"`
}

func (s *BookingService) slotLock(venue string, date time.Time) *sync.Mutex {
	key := fmt.Sprintf("%s|%s", venue, date.Format("2006-01-02"))
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.slotLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.slotLocks[key] = lock
	}
	return lock
}

// Create validates the candidate and persists it as pending on behalf of
// the requesting user.
func (s *BookingService) Create(in *BookingInput, user *models.User) (*models.Booking, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	equipment := in.EquipmentNeeded
	if equipment == nil {
		equipment = []string{}
	}
	equipmentJSON, err := json.Marshal(equipment)
	if err != nil {
		return nil, fmt.Errorf("encode equipment list: %w", err)
	}

	booking := &models.Booking{
		Venue:             in.Venue,
		EventName:         in.EventName,
		Description:       in.Description,
		Date:              normalizeDate(in.Date),
		StartTime:         padTime(in.StartTime),
		EndTime:           padTime(in.EndTime),
		BookedByID:        user.ID,
		Department:        in.Department,
		ContactNumber:     in.ContactNumber,
		ExpectedAttendees: in.ExpectedAttendees,
		EquipmentNeeded:   datatypes.JSON(equipmentJSON),
		Status:            models.BookingStatusPending,
	}
	if err := s.repo.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"venue":      booking.Venue,
		"user_id":    user.ID,
	}).Info("booking created, awaiting approval")

	return s.repo.FindByID(booking.ID)
}

// List returns all bookings for admins and only the caller's own bookings
// otherwise, newest date first.
func (s *BookingService) List(user *models.User) ([]models.Booking, error) {
	if user.IsAdmin() {
		return s.repo.FindAll()
	}
	return s.repo.FindByUser(user.ID)
}

// ListPending returns all pending bookings. Admin only.
func (s *BookingService) ListPending(user *models.User) ([]models.Booking, error) {
	if !user.IsAdmin() {
		return nil, models.ErrForbidden
	}
	return s.repo.FindPending()
}

// Get returns a single booking, visible to its owner and to admins.
func (s *BookingService) Get(id uint, user *models.User) (*models.Booking, error) {
	booking, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() && booking.BookedByID != user.ID {
		return nil, models.ErrForbidden
	}
	return booking, nil
}

// Approve transitions a pending booking to approved. The conflict check is
// re-run under the slot lock because other approvals may have landed since
// the booking was created; the status write is conditional on the record
// still being pending.
func (s *BookingService) Approve(id uint, reviewer *models.User) (*models.Booking, error) {
	if !reviewer.IsAdmin() {
		return nil, models.ErrForbidden
	}

	booking, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, models.ErrAlreadyReviewed
	}

	lock := s.slotLock(booking.Venue, booking.Date)
	lock.Lock()
	defer lock.Unlock()

	conflict, err := s.conflicts.FindConflict(booking.Venue, booking.Date, booking.StartTime, booking.EndTime, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if conflict != nil {
		return nil, &models.SlotConflictError{Conflicting: conflict}
	}

	now := time.Now()
	updated, err := s.repo.UpdateIfPending(id, map[string]any{
		"status":         models.BookingStatusApproved,
		"reviewed_by_id": reviewer.ID,
		"reviewed_at":    now,
	})
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}
	if !updated {
		// Lost a race on this record: someone reviewed it in between.
		return nil, models.ErrAlreadyReviewed
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":  id,
		"reviewed_by": reviewer.ID,
	}).Info("booking approved")

	return s.repo.FindByID(id)
}

// Reject transitions a pending booking to rejected. A reason is required.
func (s *BookingService) Reject(id uint, reviewer *models.User, reason string) (*models.Booking, error) {
	if !reviewer.IsAdmin() {
		return nil, models.ErrForbidden
	}
	if reason == "" {
		return nil, models.ErrMissingReason
	}

	booking, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending {
		return nil, models.ErrAlreadyReviewed
	}

	now := time.Now()
	updated, err := s.repo.UpdateIfPending(id, map[string]any{
		"status":           models.BookingStatusRejected,
		"rejection_reason": reason,
		"reviewed_by_id":   reviewer.ID,
		"reviewed_at":      now,
	})
	if err != nil {
		return nil, fmt.Errorf("reject booking: %w", err)
	}
	if !updated {
		return nil, models.ErrAlreadyReviewed
	}

	logrus.WithFields(logrus.Fields{
		"booking_id":  id,
		"reviewed_by": reviewer.ID,
	}).Info("booking rejected")

	return s.repo.FindByID(id)
}

// Delete removes a booking. Owners may delete their own bookings while
// still pending; admins may delete any booking in any status.
func (s *BookingService) Delete(id uint, user *models.User) error {
	booking, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !user.IsAdmin() && booking.BookedByID != user.ID {
		return models.ErrForbidden
	}
	if booking.Status == models.BookingStatusApproved && !user.IsAdmin() {
		return models.ErrCannotCancelApproved
	}
	return s.repo.Delete(id)
}

// CheckAvailability lists existing claims (approved and pending) on a
// venue/date so callers can see what a slot already carries.
func (s *BookingService) CheckAvailability(venue string, date time.Time) ([]SlotInfo, error) {
	bookings, err := s.repo.FindBySlot(venue, normalizeDate(date),
		models.BookingStatusApproved, models.BookingStatusPending)
	if err != nil {
		return nil, err
	}
	slots := make([]SlotInfo, 0, len(bookings))
	for _, b := range bookings {
		slots = append(slots, SlotInfo{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
			EventName: b.EventName,
		})
	}
	return slots, nil
}

// normalizeDate strips the time-of-day so bookings compare by calendar day.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
