package services

import (
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"college-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository so the booking workflow
// can be exercised without a database.
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   uint
	bookings map[uint]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uint]*models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	b.ID = r.nextID
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings[b.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) FindByID(id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) FindAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	sortBookings(out)
	return out, nil
}

func (r *fakeBookingRepo) FindByUser(userID uint) ([]models.Booking, error) {
	all, _ := r.FindAll()
	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.BookedByID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindPending() ([]models.Booking, error) {
	all, _ := r.FindAll()
	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.Status == models.BookingStatusPending {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindBySlot(venue string, date time.Time, statuses ...models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if b.Venue != venue || !b.Date.Equal(date) {
			continue
		}
		if len(statuses) > 0 {
			match := false
			for _, s := range statuses {
				if b.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out, nil
}

func (r *fakeBookingRepo) UpdateIfPending(id uint, patch map[string]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || b.Status != models.BookingStatusPending {
		return false, nil
	}
	if v, ok := patch["status"]; ok {
		b.Status = v.(models.BookingStatus)
	}
	if v, ok := patch["reviewed_by_id"]; ok {
		id := v.(uint)
		b.ReviewedByID = &id
	}
	if v, ok := patch["reviewed_at"]; ok {
		at := v.(time.Time)
		b.ReviewedAt = &at
	}
	if v, ok := patch["rejection_reason"]; ok {
		b.RejectionReason = v.(string)
	}
	b.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeBookingRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return models.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func sortBookings(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].Date.Equal(bookings[j].Date) {
			return bookings[i].Date.After(bookings[j].Date)
		}
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

var (
	student      = &models.User{ID: 1, Name: "Asha", Email: "asha@srit.ac.in", Role: models.RoleStudent, Branch: "CSE"}
	otherStudent = &models.User{ID: 2, Name: "Ravi", Email: "ravi@srit.ac.in", Role: models.RoleStudent, Branch: "ECE"}
	admin        = &models.User{ID: 3, Name: "Admin", Email: "admin@srit.ac.in", Role: models.RoleAdmin}
)

func newTestService() (*BookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	return NewBookingService(repo, models.NewCatalog()), repo
}

func validInput(start, end string) *BookingInput {
	return &BookingInput{
		Venue:             "Main Seminar Hall",
		EventName:         "Tech Talk",
		Description:       "Guest lecture on distributed systems",
		Date:              time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:         start,
		EndTime:           end,
		Department:        "CSE",
		ContactNumber:     "9876543210",
		ExpectedAttendees: 60,
		EquipmentNeeded:   []string{"Projector", "Microphone"},
	}
}

func TestCreate_PersistsPending(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, student.ID, booking.BookedByID)
	assert.Equal(t, "10:00", booking.StartTime)
	assert.Nil(t, booking.ReviewedAt)
	assert.JSONEq(t, `["Projector","Microphone"]`, string(booking.EquipmentNeeded))
}

func TestCreate_NormalizesSingleDigitHour(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("9:30", "10:30"), student)
	require.NoError(t, err)
	assert.Equal(t, "09:30", booking.StartTime)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService()

	in := validInput("10:00", "11:00")
	in.Venue = "Nonexistent Hall"
	_, err := svc.Create(in, student)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)
}

// Scenario A: overlapping pending bookings coexist; the first approval
// wins and the second fails with a slot conflict.
func TestApprove_OverlapConflict(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	second, err := svc.Create(validInput("10:30", "11:30"), otherStudent)
	require.NoError(t, err, "overlapping pending bookings must not block each other")

	approved, err := svc.Approve(first.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedByID)
	assert.Equal(t, admin.ID, *approved.ReviewedByID)
	assert.NotNil(t, approved.ReviewedAt)

	_, err = svc.Approve(second.ID, admin)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrSlotConflict)

	var conflict *models.SlotConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.ID, conflict.Conflicting.ID)

	// The losing booking stays pending.
	got, err := svc.Get(second.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

// Scenario B: boundary-touching intervals do not conflict.
func TestApprove_BoundaryTouchingSlots(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Create(validInput("09:00", "10:00"), student)
	require.NoError(t, err)
	second, err := svc.Create(validInput("10:00", "11:00"), otherStudent)
	require.NoError(t, err)

	_, err = svc.Approve(first.ID, admin)
	require.NoError(t, err)
	_, err = svc.Approve(second.ID, admin)
	require.NoError(t, err)
}

// P2: rejected and pending bookings are never conflict sources.
func TestApprove_IgnoresRejectedAndPending(t *testing.T) {
	svc, _ := newTestService()

	blocked, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)
	_, err = svc.Reject(blocked.ID, admin, "double booked")
	require.NoError(t, err)

	_, err = svc.Create(validInput("10:15", "10:45"), otherStudent)
	require.NoError(t, err)

	candidate, err := svc.Create(validInput("10:00", "11:00"), otherStudent)
	require.NoError(t, err)
	_, err = svc.Approve(candidate.ID, admin)
	require.NoError(t, err)
}

// P3: terminal states reject further transitions and stay unchanged.
func TestApproveReject_TerminalStates(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	_, err = svc.Approve(booking.ID, admin)
	require.NoError(t, err)

	_, err = svc.Approve(booking.ID, admin)
	assert.ErrorIs(t, err, models.ErrAlreadyReviewed)
	_, err = svc.Reject(booking.ID, admin, "changed my mind")
	assert.ErrorIs(t, err, models.ErrAlreadyReviewed)

	got, err := svc.Get(booking.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusApproved, got.Status)
}

// Scenario C: rejecting without a reason fails and the record stays pending.
func TestReject_RequiresReason(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	_, err = svc.Reject(booking.ID, admin, "")
	assert.ErrorIs(t, err, models.ErrMissingReason)

	got, err := svc.Get(booking.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestReject_RecordsReason(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	rejected, err := svc.Reject(booking.ID, admin, "venue under maintenance")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, rejected.Status)
	assert.Equal(t, "venue under maintenance", rejected.RejectionReason)
	require.NotNil(t, rejected.ReviewedByID)
	assert.Equal(t, admin.ID, *rejected.ReviewedByID)
}

func TestApproveReject_AdminOnly(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	_, err = svc.Approve(booking.ID, student)
	assert.ErrorIs(t, err, models.ErrForbidden)
	_, err = svc.Reject(booking.ID, student, "nope")
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestApprove_NotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Approve(404, admin)
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

// P4: non-admins see only their own bookings.
func TestList_RoleVisibility(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(validInput("09:00", "10:00"), student)
	require.NoError(t, err)
	_, err = svc.Create(validInput("10:00", "11:00"), otherStudent)
	require.NoError(t, err)

	mine, err := svc.List(student)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, student.ID, mine[0].BookedByID)

	all, err := svc.List(admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListPending_AdminOnly(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ListPending(student)
	assert.ErrorIs(t, err, models.ErrForbidden)

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)
	_, err = svc.Approve(booking.ID, admin)
	require.NoError(t, err)
	_, err = svc.Create(validInput("11:00", "12:00"), student)
	require.NoError(t, err)

	pending, err := svc.ListPending(admin)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.BookingStatusPending, pending[0].Status)
}

// Scenario D: a student cannot read someone else's booking.
func TestGet_OwnershipGate(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	_, err = svc.Get(booking.ID, otherStudent)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.Get(booking.ID, student)
	assert.NoError(t, err)
	_, err = svc.Get(booking.ID, admin)
	assert.NoError(t, err)
}

// P5: owners cannot cancel approved bookings; admins can delete anything.
func TestDelete_Guards(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(booking.ID, otherStudent), models.ErrForbidden)

	_, err = svc.Approve(booking.ID, admin)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(booking.ID, student), models.ErrCannotCancelApproved)

	require.NoError(t, svc.Delete(booking.ID, admin))
	assert.ErrorIs(t, svc.Delete(booking.ID, admin), models.ErrBookingNotFound)

	pending, err := svc.Create(validInput("12:00", "13:00"), student)
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(pending.ID, student))
}

func TestCheckAvailability_ProjectsClaims(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Create(validInput("09:00", "10:00"), student)
	require.NoError(t, err)
	_, err = svc.Approve(first.ID, admin)
	require.NoError(t, err)

	_, err = svc.Create(validInput("10:00", "11:00"), otherStudent)
	require.NoError(t, err)

	rejected, err := svc.Create(validInput("11:00", "12:00"), otherStudent)
	require.NoError(t, err)
	_, err = svc.Reject(rejected.ID, admin, "no staff available")
	require.NoError(t, err)

	slots, err := svc.CheckAvailability("Main Seminar Hall", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, slots, 2, "rejected bookings should not appear")
	assert.Equal(t, models.BookingStatusApproved, slots[0].Status)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, models.BookingStatusPending, slots[1].Status)
	assert.Equal(t, "Tech Talk", slots[1].EventName)
}

// P1 under concurrency: racing approvals of overlapping pending bookings
// must never both succeed.
func TestApprove_ConcurrentOverlappingApprovals(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.Create(validInput("10:00", "11:00"), student)
	require.NoError(t, err)
	second, err := svc.Create(validInput("10:30", "11:30"), otherStudent)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = svc.Approve(id, admin)
		}(i, id)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.Is(err, models.ErrSlotConflict) || errors.Is(err, models.ErrAlreadyReviewed))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one of two overlapping approvals may win")
}
