package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type CategoryRepository interface {
	List(ctx context.Context, page, pageSize int) ([]db_models.Category, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]db_models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Category, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	SearchByName(ctx context.Context, query string, limit int) ([]db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Category, int64, error) {
	var categories []db_models.Category
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("name_ru").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepository) ListFeatured(ctx context.Context, limit int) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("name_ru").
		Limit(limit).
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) SearchByName(ctx context.Context, query string, limit int) ([]db_models.Category, error) {
	var categories []db_models.Category
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name_ru ILIKE ? OR name_en ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&categories).Error
	return categories, err
}
