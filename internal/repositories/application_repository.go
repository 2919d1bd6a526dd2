package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *db_models.Application) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Application, error)
	List(ctx context.Context, status string, page, pageSize int) ([]db_models.Application, int64, error)
	Save(ctx context.Context, application *db_models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *db_models.Application) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return uuid.Nil, err
	}
	return application.ID, nil
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Application, error) {
	var application db_models.Application
	err := r.db.WithContext(ctx).First(&application, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) List(ctx context.Context, status string, page, pageSize int) ([]db_models.Application, int64, error) {
	base := r.db.WithContext(ctx).Model(&db_models.Application{})
	if status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []db_models.Application
	q := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&applications).Error; err != nil {
		return nil, 0, err
	}
	return applications, total, nil
}

func (r *applicationRepository) Save(ctx context.Context, application *db_models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}
