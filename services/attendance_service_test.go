package services

import (
	"encoding/json"
	"testing"
	"time"

	"college-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditWindowOpen(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, editWindowOpen(now.Add(-time.Hour), now))
	assert.True(t, editWindowOpen(now.Add(-attendanceEditWindow), now), "window is inclusive at the boundary")
	assert.False(t, editWindowOpen(now.Add(-attendanceEditWindow-time.Minute), now))
}

func TestComputeStats(t *testing.T) {
	assert.Equal(t, AttendanceStats{}, computeStats(nil), "no records yields zero percentage, not NaN")

	records := []models.Attendance{
		{Status: models.AttendancePresent},
		{Status: models.AttendancePresent},
		{Status: models.AttendanceAbsent},
		{Status: models.AttendancePresent},
	}
	stats := computeStats(records)
	assert.Equal(t, 4, stats.TotalClasses)
	assert.Equal(t, 3, stats.PresentCount)
	assert.InDelta(t, 75.0, stats.Percentage, 0.001)
}

func TestAppendEdit(t *testing.T) {
	first := models.AttendanceEdit{
		PreviousStatus: models.AttendancePresent,
		NewStatus:      models.AttendanceAbsent,
		EditedByID:     7,
		EditedAt:       time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Reason:         "marked wrong student",
	}

	history, err := appendEdit(nil, first)
	require.NoError(t, err)

	second := first
	second.PreviousStatus = models.AttendanceAbsent
	second.NewStatus = models.AttendancePresent
	second.Reason = "medical certificate submitted"

	history, err = appendEdit(history, second)
	require.NoError(t, err)

	var edits []models.AttendanceEdit
	require.NoError(t, json.Unmarshal(history, &edits))
	require.Len(t, edits, 2)
	assert.Equal(t, "marked wrong student", edits[0].Reason)
	assert.Equal(t, models.AttendancePresent, edits[1].NewStatus)
}

func TestAppendEdit_CorruptHistory(t *testing.T) {
	_, err := appendEdit([]byte("{not json"), models.AttendanceEdit{})
	assert.Error(t, err)
}
