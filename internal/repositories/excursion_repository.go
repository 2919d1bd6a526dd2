package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
	"selexia/internal/models/request_models"
)

type ExcursionRepository interface {
	Create(ctx context.Context, excursion *db_models.Excursion) (uuid.UUID, error)
	Update(ctx context.Context, excursion *db_models.Excursion) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Excursion, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Excursion, error)
	ListPublished(ctx context.Context, filter request_models.ExcursionFilter) ([]db_models.Excursion, int64, error)
	ListPopular(ctx context.Context, limit int) ([]db_models.Excursion, error)
	ListFeatured(ctx context.Context, limit int) ([]db_models.Excursion, error)
	SearchByTitle(ctx context.Context, query string, limit int) ([]db_models.Excursion, error)
	CountPublished(ctx context.Context) (int64, error)

	// IncrementViews bumps the view counter and flips is_popular once the
	// threshold is crossed, in one round trip each.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}

type excursionRepository struct {
	db *gorm.DB
}

func NewExcursionRepository(db *gorm.DB) ExcursionRepository {
	return &excursionRepository{db: db}
}

func (r *excursionRepository) Create(ctx context.Context, excursion *db_models.Excursion) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(excursion).Error; err != nil {
		return uuid.Nil, err
	}
	return excursion.ID, nil
}

func (r *excursionRepository) Update(ctx context.Context, excursion *db_models.Excursion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(excursion)
		if result.Error != nil {
			return fmt.Errorf("failed to update excursion: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *excursionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Excursion, error) {
	var excursion db_models.Excursion
	err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("City").
		Preload("Category").
		First(&excursion, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &excursion, nil
}

func (r *excursionRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Excursion, error) {
	var excursion db_models.Excursion
	err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("City").
		Preload("Category").
		First(&excursion, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &excursion, nil
}

// publishedScope narrows every catalog query to published excursions
// with the filter applied.
func (r *excursionRepository) publishedScope(ctx context.Context, filter request_models.ExcursionFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&db_models.Excursion{}).
		Joins("JOIN countries ON countries.id = excursions.country_id").
		Joins("JOIN cities ON cities.id = excursions.city_id").
		Joins("JOIN categories ON categories.id = excursions.category_id").
		Where("excursions.status = ?", db_models.ExcursionStatusPublished)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			`excursions.title_ru ILIKE ? OR excursions.title_en ILIKE ?
			 OR excursions.description_ru ILIKE ? OR excursions.description_en ILIKE ?
			 OR cities.name_ru ILIKE ? OR countries.name_ru ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern)
	}
	if filter.Country != "" {
		q = q.Where("countries.slug = ?", filter.Country)
	}
	if filter.City != "" {
		q = q.Where("cities.slug = ?", filter.City)
	}
	if filter.Category != "" {
		q = q.Where("categories.slug = ?", filter.Category)
	}
	if filter.PriceMin != nil {
		q = q.Where("excursions.price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		q = q.Where("excursions.price <= ?", *filter.PriceMax)
	}
	if filter.RatingMin != nil {
		q = q.Where("excursions.rating >= ?", *filter.RatingMin)
	}
	if filter.IsPopular != nil {
		q = q.Where("excursions.is_popular = ?", *filter.IsPopular)
	}
	if filter.IsFeatured != nil {
		q = q.Where("excursions.is_featured = ?", *filter.IsFeatured)
	}
	return q
}

func orderForSort(sort string) string {
	switch sort {
	case "price_asc":
		return "excursions.price"
	case "price_desc":
		return "excursions.price DESC"
	case "rating":
		return "excursions.rating DESC, excursions.reviews_count DESC"
	case "newest":
		return "excursions.created_at DESC"
	default: // popular
		return "excursions.is_popular DESC, excursions.views_count DESC, excursions.rating DESC"
	}
}

func (r *excursionRepository) ListPublished(ctx context.Context, filter request_models.ExcursionFilter) ([]db_models.Excursion, int64, error) {
	var total int64
	if err := r.publishedScope(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var excursions []db_models.Excursion
	err := r.publishedScope(ctx, filter).
		Preload("Country").
		Preload("City").
		Preload("Category").
		Order(orderForSort(filter.Sort)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&excursions).Error
	if err != nil {
		return nil, 0, err
	}
	return excursions, total, nil
}

func (r *excursionRepository) ListPopular(ctx context.Context, limit int) ([]db_models.Excursion, error) {
	var excursions []db_models.Excursion
	err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("City").
		Preload("Category").
		Where("status = ? AND is_popular = ?", db_models.ExcursionStatusPublished, true).
		Order("views_count DESC, rating DESC").
		Limit(limit).
		Find(&excursions).Error
	return excursions, err
}

func (r *excursionRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Excursion, error) {
	var excursions []db_models.Excursion
	err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("City").
		Preload("Category").
		Where("status = ? AND is_featured = ?", db_models.ExcursionStatusPublished, true).
		Order("rating DESC, views_count DESC").
		Limit(limit).
		Find(&excursions).Error
	return excursions, err
}

func (r *excursionRepository) SearchByTitle(ctx context.Context, query string, limit int) ([]db_models.Excursion, error) {
	var excursions []db_models.Excursion
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.ExcursionStatusPublished).
		Where("title_ru ILIKE ? OR title_en ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&excursions).Error
	return excursions, err
}

func (r *excursionRepository) CountPublished(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Excursion{}).
		Where("status = ?", db_models.ExcursionStatusPublished).
		Count(&total).Error
	return total, err
}

func (r *excursionRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&db_models.Excursion{}).
			Where("id = ?", id).
			UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
		if err != nil {
			return err
		}

		return tx.Model(&db_models.Excursion{}).
			Where("id = ? AND views_count >= ? AND is_popular = ?", id, db_models.PopularViewsThreshold, false).
			UpdateColumn("is_popular", true).Error
	})
}
