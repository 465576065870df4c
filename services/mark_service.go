package services

import (
	"errors"
	"fmt"

	"college-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MarkInput struct {
	StudentID     uint
	Subject       string
	Semester      string
	ExamType      string
	MarksObtained float64
	TotalMarks    float64
}

type MarkService struct {
	db      *gorm.DB
	catalog *models.Catalog
}

func NewMarkService(db *gorm.DB, catalog *models.Catalog) *MarkService {
	return &MarkService{db: db, catalog: catalog}
}

// AddMark upserts the mark for (student, subject, semester, examType).
// Re-entering a mark overwrites the previous value instead of failing on
// the unique index.
func (s *MarkService) AddMark(in *MarkInput, addedBy *models.User) (*models.Mark, error) {
	if in.Subject == "" || in.Semester == "" {
		return nil, fmt.Errorf("%w: subject and semester", models.ErrMissingField)
	}
	if !s.catalog.IsValidSemester(in.Semester) {
		return nil, fmt.Errorf("%w: semester %q", models.ErrInvalidEnum, in.Semester)
	}
	examType := in.ExamType
	if examType == "" {
		examType = "Semester"
	}
	if !s.catalog.IsValidExamType(examType) {
		return nil, fmt.Errorf("%w: examType %q", models.ErrInvalidEnum, examType)
	}
	if in.MarksObtained < 0 || in.TotalMarks <= 0 || in.MarksObtained > in.TotalMarks {
		return nil, fmt.Errorf("%w: marks out of range", models.ErrValidation)
	}

	var student models.User
	if err := s.db.First(&student, in.StudentID).Error; err != nil || student.Role != models.RoleStudent {
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find student: %w", err)
		}
		return nil, models.ErrStudentNotFound
	}

	mark := models.Mark{
		StudentID:     in.StudentID,
		Branch:        student.Branch,
		Semester:      in.Semester,
		Subject:       in.Subject,
		MarksObtained: in.MarksObtained,
		TotalMarks:    in.TotalMarks,
		ExamType:      examType,
		AddedByID:     addedBy.ID,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_id"}, {Name: "subject"}, {Name: "semester"}, {Name: "exam_type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"marks_obtained", "total_marks", "branch", "added_by_id"}),
	}).Create(&mark).Error
	if err != nil {
		return nil, fmt.Errorf("save mark: %w", err)
	}

	// Re-read so updates return the persisted row, not the insert attempt.
	var saved models.Mark
	err = s.db.Where("student_id = ? AND subject = ? AND semester = ? AND exam_type = ?",
		in.StudentID, in.Subject, in.Semester, examType).First(&saved).Error
	if err != nil {
		return nil, fmt.Errorf("reload mark: %w", err)
	}
	return &saved, nil
}

func (s *MarkService) StudentMarks(studentID uint) ([]models.Mark, error) {
	var marks []models.Mark
	err := s.db.Where("student_id = ?", studentID).
		Order("semester, subject").
		Find(&marks).Error
	return marks, err
}

// StudentsByBranch lists students of a branch for the faculty mark-entry view.
func (s *MarkService) StudentsByBranch(branch string) ([]models.User, error) {
	if !s.catalog.IsValidBranch(branch) {
		return nil, fmt.Errorf("%w: branch %q", models.ErrInvalidEnum, branch)
	}
	var students []models.User
	err := s.db.Select("id", "name", "email", "branch").
		Where("role = ? AND branch = ?", models.RoleStudent, branch).
		Order("name").
		Find(&students).Error
	return students, err
}
