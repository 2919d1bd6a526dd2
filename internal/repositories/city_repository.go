package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type CityRepository interface {
	List(ctx context.Context, page, pageSize int) ([]db_models.City, int64, error)
	ListByCountry(ctx context.Context, countryID uuid.UUID, page, pageSize int) ([]db_models.City, int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error)
	FindBySlug(ctx context.Context, countryID uuid.UUID, slug string) (*db_models.City, error)
	SearchByName(ctx context.Context, query string, limit int) ([]db_models.City, error)
	Count(ctx context.Context) (int64, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context, page, pageSize int) ([]db_models.City, int64, error) {
	var cities []db_models.City
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.City{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Country").
		Order("name_ru").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}

func (r *cityRepository) ListByCountry(ctx context.Context, countryID uuid.UUID, page, pageSize int) ([]db_models.City, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&db_models.City{}).
		Where("country_id = ?", countryID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var cities []db_models.City
	err = r.db.WithContext(ctx).
		Preload("Country").
		Where("country_id = ?", countryID).
		Order("name_ru").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&cities).Error
	if err != nil {
		return nil, 0, err
	}
	return cities, total, nil
}

func (r *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).Preload("Country").First(&city, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) FindBySlug(ctx context.Context, countryID uuid.UUID, slug string) (*db_models.City, error) {
	var city db_models.City
	err := r.db.WithContext(ctx).
		Preload("Country").
		Where("country_id = ? AND slug = ?", countryID, slug).
		First(&city).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) SearchByName(ctx context.Context, query string, limit int) ([]db_models.City, error) {
	var cities []db_models.City
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Preload("Country").
		Where("name_ru ILIKE ? OR name_en ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&cities).Error
	return cities, err
}

func (r *cityRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.City{}).Count(&total).Error
	return total, err
}
