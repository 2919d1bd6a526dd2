package repositories

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error)
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error)
	FindByUserAndExcursion(ctx context.Context, userID, excursionID uuid.UUID) (*db_models.Review, error)
	ListApprovedByExcursion(ctx context.Context, excursionID uuid.UUID, page, pageSize int) ([]db_models.Review, int64, error)
	ListPending(ctx context.Context, page, pageSize int) ([]db_models.Review, int64, error)
	CountApproved(ctx context.Context) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// recalcRating refreshes the excursion's aggregate inside the caller's
// transaction so the review write and the aggregate never diverge.
// Soft-deleted reviews are excluded by gorm's default scope.
func recalcRating(tx *gorm.DB, excursionID uuid.UUID) error {
	var ratings []int
	err := tx.Model(&db_models.Review{}).
		Where("excursion_id = ? AND is_approved = ?", excursionID, true).
		Pluck("rating", &ratings).Error
	if err != nil {
		return err
	}

	rating, count := aggregateRating(ratings)
	return tx.Model(&db_models.Excursion{}).
		Where("id = ?", excursionID).
		Updates(map[string]interface{}{
			"rating":        rating,
			"reviews_count": count,
		}).Error
}

// aggregateRating returns the mean rating rounded to two decimals and
// the review count; an empty slice resets both to zero.
func aggregateRating(ratings []int) (float64, int64) {
	if len(ratings) == 0 {
		return 0, 0
	}
	var sum int
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*100) / 100, int64(len(ratings))
}

func (r *reviewRepository) Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recalcRating(tx, review.ExcursionID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return review.ID, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(review).Error; err != nil {
			return err
		}
		return recalcRating(tx, review.ExcursionID)
	})
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review db_models.Review
		if err := tx.First(&review, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recalcRating(tx, review.ExcursionID)
	})
}

func (r *reviewRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review db_models.Review
		if err := tx.First(&review, "id = ?", id).Error; err != nil {
			return err
		}
		err := tx.Model(&db_models.Review{}).
			Where("id = ?", id).
			Update("is_approved", approved).Error
		if err != nil {
			return err
		}
		return recalcRating(tx, review.ExcursionID)
	})
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Excursion").
		First(&review, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndExcursion(ctx context.Context, userID, excursionID uuid.UUID) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND excursion_id = ?", userID, excursionID).
		First(&review).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListApprovedByExcursion(ctx context.Context, excursionID uuid.UUID, page, pageSize int) ([]db_models.Review, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("excursion_id = ? AND is_approved = ?", excursionID, true).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var reviews []db_models.Review
	err = r.db.WithContext(ctx).
		Preload("User").
		Where("excursion_id = ? AND is_approved = ?", excursionID, true).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) ListPending(ctx context.Context, page, pageSize int) ([]db_models.Review, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("is_approved = ?", false).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var reviews []db_models.Review
	err = r.db.WithContext(ctx).
		Preload("User").
		Preload("Excursion").
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) CountApproved(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("is_approved = ?", true).
		Count(&total).Error
	return total, err
}
