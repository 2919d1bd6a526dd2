package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type FavoriteRepository interface {
	Find(ctx context.Context, userID uuid.UUID, itemType db_models.FavoriteItemType, itemID uuid.UUID) (*db_models.Favorite, error)
	Create(ctx context.Context, favorite *db_models.Favorite) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, itemType string, page, pageSize int) ([]db_models.Favorite, int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Find(ctx context.Context, userID uuid.UUID, itemType db_models.FavoriteItemType, itemID uuid.UUID) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		First(&favorite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *db_models.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&db_models.Favorite{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID, itemType string, page, pageSize int) ([]db_models.Favorite, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ?", userID)
	if itemType != "" {
		base = base.Where("item_type = ?", itemType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var favorites []db_models.Favorite
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	if itemType != "" {
		q = q.Where("item_type = ?", itemType)
	}
	if err := q.Find(&favorites).Error; err != nil {
		return nil, 0, err
	}
	return favorites, total, nil
}

func (r *favoriteRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
