package models

import "time"

type Mark struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID uint   `gorm:"uniqueIndex:idx_mark_entry,priority:1;column:student_id" json:"student_id"`
	Student   User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Branch    string `gorm:"size:32" json:"branch"`
	Semester  string `gorm:"size:8;uniqueIndex:idx_mark_entry,priority:3" json:"semester"`
	Subject   string `gorm:"size:100;uniqueIndex:idx_mark_entry,priority:2" json:"subject"`

	MarksObtained float64 `json:"marksObtained"`
	TotalMarks    float64 `gorm:"default:100" json:"totalMarks"`
	ExamType      string  `gorm:"size:16;default:Semester;uniqueIndex:idx_mark_entry,priority:4" json:"examType"`

	AddedByID uint `gorm:"column:added_by_id" json:"added_by_id"`
	AddedBy   User `gorm:"foreignKey:AddedByID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
