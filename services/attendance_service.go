package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"college-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Attendance edits are open to faculty for 24 hours; after that only
// admins may correct a record.
const attendanceEditWindow = 24 * time.Hour

type AttendanceEntry struct {
	StudentID uint   `json:"studentId"`
	Status    string `json:"status"`
}

type AttendanceStats struct {
	TotalClasses int     `json:"totalClasses"`
	PresentCount int     `json:"presentCount"`
	Percentage   float64 `json:"percentage"`
}

type AttendanceService struct {
	db      *gorm.DB
	catalog *models.Catalog
}

func NewAttendanceService(db *gorm.DB, catalog *models.Catalog) *AttendanceService {
	return &AttendanceService{db: db, catalog: catalog}
}

// Mark records attendance for a list of students on (date, period),
// upserting so a re-submission overwrites the earlier call.
func (s *AttendanceService) Mark(date time.Time, period int, branch string, entries []AttendanceEntry, faculty *models.User) ([]models.Attendance, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: attendance data", models.ErrMissingField)
	}
	if period < 1 || period > 6 {
		return nil, fmt.Errorf("%w: period %d", models.ErrValidation, period)
	}
	if !s.catalog.IsValidBranch(branch) {
		return nil, fmt.Errorf("%w: branch %q", models.ErrInvalidEnum, branch)
	}

	day := normalizeDate(date)
	records := make([]models.Attendance, 0, len(entries))
	for _, e := range entries {
		if e.Status != models.AttendancePresent && e.Status != models.AttendanceAbsent {
			return nil, fmt.Errorf("%w: status %q", models.ErrInvalidEnum, e.Status)
		}
		record := models.Attendance{
			StudentID: e.StudentID,
			FacultyID: faculty.ID,
			Date:      day,
			Period:    period,
			Status:    e.Status,
			Branch:    branch,
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "date"}, {Name: "period"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "faculty_id", "branch"}),
		}).Create(&record).Error
		if err != nil {
			return nil, fmt.Errorf("save attendance for student %d: %w", e.StudentID, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Update corrects one attendance record and appends to its edit history.
func (s *AttendanceService) Update(id uint, status, reason string, editor *models.User) (*models.Attendance, error) {
	if status != models.AttendancePresent && status != models.AttendanceAbsent {
		return nil, fmt.Errorf("%w: status %q", models.ErrInvalidEnum, status)
	}

	var record models.Attendance
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrAttendanceNotFound
		}
		return nil, err
	}

	if !editWindowOpen(record.CreatedAt, time.Now()) && !editor.IsAdmin() {
		return nil, models.ErrEditWindowClosed
	}

	history, err := appendEdit(record.EditHistory, models.AttendanceEdit{
		PreviousStatus: record.Status,
		NewStatus:      status,
		EditedByID:     editor.ID,
		EditedAt:       time.Now(),
		Reason:         reason,
	})
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&record).Updates(map[string]any{
		"status":       status,
		"edit_history": history,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("update attendance: %w", err)
	}
	record.Status = status
	record.EditHistory = history
	return &record, nil
}

// ForStudent returns a student's records, newest first, with summary stats.
func (s *AttendanceService) ForStudent(studentID uint) ([]models.Attendance, AttendanceStats, error) {
	var records []models.Attendance
	err := s.db.Where("student_id = ?", studentID).
		Order("date DESC, period").
		Find(&records).Error
	if err != nil {
		return nil, AttendanceStats{}, err
	}
	return records, computeStats(records), nil
}

// ForBranch returns records for a branch, optionally narrowed to a date
// and/or period, for the faculty review view.
func (s *AttendanceService) ForBranch(branch string, date *time.Time, period *int) ([]models.Attendance, error) {
	if !s.catalog.IsValidBranch(branch) {
		return nil, fmt.Errorf("%w: branch %q", models.ErrInvalidEnum, branch)
	}
	q := s.db.Where("branch = ?", branch)
	if date != nil {
		q = q.Where("date = ?", normalizeDate(*date))
	}
	if period != nil {
		q = q.Where("period = ?", *period)
	}
	var records []models.Attendance
	err := q.Preload("Student", userSummaryColumns).
		Order("date DESC, period").
		Find(&records).Error
	return records, err
}

func userSummaryColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func editWindowOpen(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= attendanceEditWindow
}

func computeStats(records []models.Attendance) AttendanceStats {
	stats := AttendanceStats{TotalClasses: len(records)}
	for _, r := range records {
		if r.Status == models.AttendancePresent {
			stats.PresentCount++
		}
	}
	if stats.TotalClasses > 0 {
		stats.Percentage = float64(stats.PresentCount) / float64(stats.TotalClasses) * 100
	}
	return stats
}

func appendEdit(history datatypes.JSON, edit models.AttendanceEdit) (datatypes.JSON, error) {
	var edits []models.AttendanceEdit
	if len(history) > 0 {
		if err := json.Unmarshal(history, &edits); err != nil {
			return nil, fmt.Errorf("decode edit history: %w", err)
		}
	}
	edits = append(edits, edit)
	out, err := json.Marshal(edits)
	if err != nil {
		return nil, fmt.Errorf("encode edit history: %w", err)
	}
	return datatypes.JSON(out), nil
}
