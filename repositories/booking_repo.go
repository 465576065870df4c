package repositories

import (
	"errors"
	"time"

	"college-backend/models"

	"gorm.io/gorm"
)

// BookingRepository is the persistence contract the booking service and the
// conflict detector work against. Keeping it an interface keeps the
// conflict/approval logic independent of the storage engine and testable
// without a database.
type BookingRepository interface {
	Create(b *models.Booking) error
	FindByID(id uint) (*models.Booking, error)
	FindAll() ([]models.Booking, error)
	FindByUser(userID uint) ([]models.Booking, error)
	FindPending() ([]models.Booking, error)
	FindBySlot(venue string, date time.Time, statuses ...models.BookingStatus) ([]models.Booking, error)
	// UpdateIfPending applies patch only while the record is still pending
	// and reports whether a row was written.
	UpdateIfPending(id uint, patch map[string]any) (bool, error)
	Delete(id uint) error
}

type gormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &gormBookingRepository{db: db}
}

func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role", "branch")
}

func (r *gormBookingRepository) Create(b *models.Booking) error {
	return r.db.Create(b).Error
}

func (r *gormBookingRepository) FindByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.
		Preload("BookedBy", userSummary).
		Preload("ReviewedBy", userSummary).
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *gormBookingRepository) FindAll() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("BookedBy", userSummary).
		Preload("ReviewedBy", userSummary).
		Order("date DESC, created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *gormBookingRepository) FindByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("BookedBy", userSummary).
		Preload("ReviewedBy", userSummary).
		Where("booked_by_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *gormBookingRepository) FindPending() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("BookedBy", userSummary).
		Where("status = ?", models.BookingStatusPending).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *gormBookingRepository) FindBySlot(venue string, date time.Time, statuses ...models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.Where("venue = ? AND date = ?", venue, date)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Order("start_time").Find(&bookings).Error
	return bookings, err
}

func (r *gormBookingRepository) UpdateIfPending(id uint, patch map[string]any) (bool, error) {
	res := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.BookingStatusPending).
		Updates(patch)
	return res.RowsAffected > 0, res.Error
}

func (r *gormBookingRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrBookingNotFound
	}
	return nil
}
