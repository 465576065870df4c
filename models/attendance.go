package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// AttendanceEdit is one entry of the append-only edit log kept on each
// attendance record.
type AttendanceEdit struct {
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	EditedByID     uint      `json:"editedBy"`
	EditedAt       time.Time `json:"editedAt"`
	Reason         string    `json:"reason,omitempty"`
}

type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"uniqueIndex:idx_att_entry,priority:1;column:student_id" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	FacultyID uint      `gorm:"column:faculty_id" json:"faculty_id"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_att_entry,priority:2" json:"date"`
	Period    int       `gorm:"uniqueIndex:idx_att_entry,priority:3" json:"period"`
	Status    string    `gorm:"size:16" json:"status"`
	Branch    string    `gorm:"size:32;index" json:"branch"`

	EditHistory datatypes.JSON `gorm:"column:edit_history" json:"editHistory,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
