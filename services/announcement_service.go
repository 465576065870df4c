package services

import (
	"errors"
	"fmt"
	"time"

	"college-backend/models"

	"gorm.io/gorm"
)

const activeAnnouncementLimit = 50

type AnnouncementInput struct {
	Title      string
	Content    string
	Type       models.AnnouncementType
	ExpiryDate *time.Time
}

type AnnouncementService struct {
	db *gorm.DB
}

func NewAnnouncementService(db *gorm.DB) *AnnouncementService {
	return &AnnouncementService{db: db}
}

// Active lists announcements that are enabled and not yet expired, newest
// first, capped so the notice board stays bounded.
func (s *AnnouncementService) Active() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := s.db.
		Preload("PostedBy", userSummaryColumns).
		Where("is_active = ?", true).
		Where("expiry_date IS NULL OR expiry_date > ?", time.Now()).
		Order("created_at DESC").
		Limit(activeAnnouncementLimit).
		Find(&announcements).Error
	return announcements, err
}

func (s *AnnouncementService) GetByID(id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	err := s.db.Preload("PostedBy", userSummaryColumns).First(&announcement, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (s *AnnouncementService) Create(in *AnnouncementInput, postedBy *models.User) (*models.Announcement, error) {
	if in.Title == "" || in.Content == "" {
		return nil, fmt.Errorf("%w: title and content", models.ErrMissingField)
	}
	if len(in.Title) > 200 || len(in.Content) > 2000 {
		return nil, fmt.Errorf("%w: title or content too long", models.ErrValidation)
	}
	annType := in.Type
	if annType == "" {
		annType = models.AnnouncementInfo
	}

	announcement := &models.Announcement{
		Title:      in.Title,
		Content:    in.Content,
		Type:       annType,
		IsActive:   true,
		PostedByID: postedBy.ID,
		ExpiryDate: in.ExpiryDate,
	}
	if err := s.db.Create(announcement).Error; err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}
	return s.GetByID(announcement.ID)
}

// Update patches only the provided fields.
func (s *AnnouncementService) Update(id uint, patch map[string]any) (*models.Announcement, error) {
	announcement, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(patch) > 0 {
		if err := s.db.Model(announcement).Updates(patch).Error; err != nil {
			return nil, fmt.Errorf("update announcement: %w", err)
		}
	}
	return s.GetByID(id)
}

func (s *AnnouncementService) Delete(id uint) error {
	res := s.db.Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrAnnouncementNotFound
	}
	return nil
}

// Click increments the click counter atomically.
func (s *AnnouncementService) Click(id uint) error {
	res := s.db.Model(&models.Announcement{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrAnnouncementNotFound
	}
	return nil
}
