package services

import (
	"testing"
	"time"

	"college-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, repo *fakeBookingRepo, venue, start, end string, status models.BookingStatus) *models.Booking {
	t.Helper()
	b := &models.Booking{
		Venue:     venue,
		EventName: "Seeded Event",
		Date:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
	require.NoError(t, repo.Create(b))
	return b
}

func TestFindConflict(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		seeded       [2]string // approved booking interval
		candidate    [2]string
		wantConflict bool
	}{
		{"full containment", [2]string{"10:00", "12:00"}, [2]string{"10:30", "11:30"}, true},
		{"partial overlap front", [2]string{"10:00", "11:00"}, [2]string{"09:30", "10:30"}, true},
		{"partial overlap back", [2]string{"10:00", "11:00"}, [2]string{"10:30", "11:30"}, true},
		{"identical interval", [2]string{"10:00", "11:00"}, [2]string{"10:00", "11:00"}, true},
		{"candidate contains seeded", [2]string{"10:00", "11:00"}, [2]string{"09:00", "12:00"}, true},
		{"touching end to start", [2]string{"09:00", "10:00"}, [2]string{"10:00", "11:00"}, false},
		{"touching start to end", [2]string{"11:00", "12:00"}, [2]string{"10:00", "11:00"}, false},
		{"disjoint before", [2]string{"14:00", "15:00"}, [2]string{"09:00", "10:00"}, false},
		{"disjoint after", [2]string{"09:00", "10:00"}, [2]string{"14:00", "15:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBookingRepo()
			seeded := seedBooking(t, repo, "Auditorium", tt.seeded[0], tt.seeded[1], models.BookingStatusApproved)

			detector := NewConflictDetector(repo)
			conflict, err := detector.FindConflict("Auditorium", date, tt.candidate[0], tt.candidate[1], 0)
			require.NoError(t, err)

			if tt.wantConflict {
				require.NotNil(t, conflict)
				assert.Equal(t, seeded.ID, conflict.ID)
			} else {
				assert.Nil(t, conflict)
			}
		})
	}
}

func TestFindConflict_OnlyApprovedCount(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(t, repo, "Auditorium", "10:00", "11:00", models.BookingStatusPending)
	seedBooking(t, repo, "Auditorium", "10:00", "11:00", models.BookingStatusRejected)

	detector := NewConflictDetector(repo)
	conflict, err := detector.FindConflict("Auditorium", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "10:00", "11:00", 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindConflict_ScopedToVenueAndDate(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(t, repo, "Mini Hall", "10:00", "11:00", models.BookingStatusApproved)

	detector := NewConflictDetector(repo)

	// Same time, different venue.
	conflict, err := detector.FindConflict("Auditorium", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "10:00", "11:00", 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// Same venue and time, different day.
	conflict, err = detector.FindConflict("Mini Hall", time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), "10:00", "11:00", 0)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestFindConflict_ExcludesSelf(t *testing.T) {
	repo := newFakeBookingRepo()
	seeded := seedBooking(t, repo, "Auditorium", "10:00", "11:00", models.BookingStatusApproved)

	detector := NewConflictDetector(repo)
	conflict, err := detector.FindConflict("Auditorium", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "10:00", "11:00", seeded.ID)
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestBookingOverlaps(t *testing.T) {
	b := &models.Booking{StartTime: "10:00", EndTime: "11:00"}
	assert.True(t, b.Overlaps("10:30", "11:30"))
	assert.True(t, b.Overlaps("09:00", "12:00"))
	assert.False(t, b.Overlaps("11:00", "12:00"))
	assert.False(t, b.Overlaps("09:00", "10:00"))
}
