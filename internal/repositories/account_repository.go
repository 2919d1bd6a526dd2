package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"selexia/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User) error

	GetSettings(ctx context.Context, userID uuid.UUID) (*db_models.UserSettings, error)
	SaveSettings(ctx context.Context, settings *db_models.UserSettings) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// InsertTx creates the user together with its default settings row.
func (a *accountRepository) InsertTx(ctx context.Context, user *db_models.User) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		settings := &db_models.UserSettings{
			UserID:             user.ID,
			EmailNotifications: true,
			PushNotifications:  true,
			ShowReviews:        true,
			PreferredLanguage:  "ru",
			Timezone:           "Europe/Moscow",
		}
		return tx.Create(settings).Error
	})
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := a.db.WithContext(ctx).First(&user, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (a *accountRepository) Update(ctx context.Context, user *db_models.User) error {
	return a.db.WithContext(ctx).Save(user).Error
}

func (a *accountRepository) GetSettings(ctx context.Context, userID uuid.UUID) (*db_models.UserSettings, error) {
	var settings db_models.UserSettings
	err := a.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &settings, nil
}

func (a *accountRepository) SaveSettings(ctx context.Context, settings *db_models.UserSettings) error {
	return a.db.WithContext(ctx).Save(settings).Error
}
