package models

import "time"

type AnnouncementType string

const (
	AnnouncementInfo      AnnouncementType = "info"
	AnnouncementImportant AnnouncementType = "important"
	AnnouncementUrgent    AnnouncementType = "urgent"
	AnnouncementEvent     AnnouncementType = "event"
)

type Announcement struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Title      string           `gorm:"size:200" json:"title"`
	Content    string           `gorm:"size:2000" json:"content"`
	Type       AnnouncementType `gorm:"size:16;default:info" json:"type"`
	IsActive   bool             `gorm:"default:true;index:idx_active_created,priority:1" json:"isActive"`
	PostedByID uint             `gorm:"column:posted_by_id" json:"posted_by_id"`
	PostedBy   User             `gorm:"foreignKey:PostedByID" json:"postedBy,omitempty"`
	ClickCount int              `gorm:"default:0" json:"clickCount"`
	ExpiryDate *time.Time       `gorm:"index" json:"expiryDate,omitempty"` // nil means no expiry

	CreatedAt time.Time `gorm:"index:idx_active_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Valid reports whether the announcement should still be shown.
func (a *Announcement) Valid(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.ExpiryDate != nil && a.ExpiryDate.Before(now) {
		return false
	}
	return true
}
