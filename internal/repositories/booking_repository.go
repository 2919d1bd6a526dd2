package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, int64, error)
	ListAll(ctx context.Context, status string, page, pageSize int) ([]db_models.Booking, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error
	Count(ctx context.Context) (int64, error)

	// HasEligibleBooking reports whether the user holds a confirmed or
	// completed booking for the excursion.
	HasEligibleBooking(ctx context.Context, userID, excursionID uuid.UUID) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, booking *db_models.Booking) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return uuid.Nil, err
	}
	return booking.ID, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := r.db.WithContext(ctx).
		Preload("Excursion").
		Preload("Excursion.Country").
		Preload("Excursion.City").
		Preload("User").
		First(&booking, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var bookings []db_models.Booking
	err = r.db.WithContext(ctx).
		Preload("Excursion").
		Preload("Excursion.Country").
		Preload("Excursion.City").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) ListAll(ctx context.Context, status string, page, pageSize int) ([]db_models.Booking, int64, error) {
	base := r.db.WithContext(ctx).Model(&db_models.Booking{})
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []db_models.Booking
	q := r.db.WithContext(ctx).
		Preload("Excursion").
		Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Booking{}).Count(&total).Error
	return total, err
}

func (r *bookingRepository) HasEligibleBooking(ctx context.Context, userID, excursionID uuid.UUID) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("user_id = ? AND excursion_id = ?", userID, excursionID).
		Where("status IN ?", []db_models.BookingStatus{
			db_models.BookingStatusConfirmed,
			db_models.BookingStatusCompleted,
		}).
		Count(&total).Error
	if err != nil {
		return false, err
	}
	return total > 0, nil
}
