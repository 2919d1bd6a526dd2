package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Review struct {
	BaseModel
	ExcursionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_excursion"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_excursion"`

	Rating     int            `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text       string         `gorm:"type:text;not null"`
	IsApproved bool           `gorm:"default:true;index"`
	Images     pq.StringArray `gorm:"type:text[]"`

	Excursion Excursion `gorm:"foreignKey:ExcursionID"`
	User      User      `gorm:"foreignKey:UserID"`
}
