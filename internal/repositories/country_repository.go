package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type CountryRepository interface {
	List(ctx context.Context, page, pageSize int) ([]db_models.Country, int64, error)
	ListPopular(ctx context.Context, limit int) ([]db_models.Country, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Country, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Country, error)
	SearchByName(ctx context.Context, query string, limit int) ([]db_models.Country, error)
	Count(ctx context.Context) (int64, error)

	// CityCounts returns city totals grouped by country id.
	CityCounts(ctx context.Context) (map[uuid.UUID]int64, error)
	// PublishedExcursionCounts returns published excursion totals grouped
	// by country id.
	PublishedExcursionCounts(ctx context.Context) (map[uuid.UUID]int64, error)
}

type countryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) CountryRepository {
	return &countryRepository{db: db}
}

func (r *countryRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Country, int64, error) {
	var countries []db_models.Country
	var total int64

	if err := r.db.WithContext(ctx).Model(&db_models.Country{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("name_ru").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&countries).Error
	if err != nil {
		return nil, 0, err
	}
	return countries, total, nil
}

func (r *countryRepository) ListPopular(ctx context.Context, limit int) ([]db_models.Country, error) {
	var countries []db_models.Country
	err := r.db.WithContext(ctx).
		Where("is_popular = ?", true).
		Order("name_ru").
		Limit(limit).
		Find(&countries).Error
	return countries, err
}

func (r *countryRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).First(&country, "slug = ?", slug).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Country, error) {
	var country db_models.Country
	err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) SearchByName(ctx context.Context, query string, limit int) ([]db_models.Country, error) {
	var countries []db_models.Country
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name_ru ILIKE ? OR name_en ILIKE ?", pattern, pattern).
		Limit(limit).
		Find(&countries).Error
	return countries, err
}

func (r *countryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Country{}).Count(&total).Error
	return total, err
}

type groupCount struct {
	GroupID uuid.UUID
	Total   int64
}

func (r *countryRepository) CityCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&db_models.City{}).
		Select("country_id AS group_id, COUNT(*) AS total").
		Group("country_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

func (r *countryRepository) PublishedExcursionCounts(ctx context.Context) (map[uuid.UUID]int64, error) {
	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Excursion{}).
		Select("country_id AS group_id, COUNT(*) AS total").
		Where("status = ?", db_models.ExcursionStatusPublished).
		Group("country_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}
