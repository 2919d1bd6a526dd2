package db_models

import "github.com/google/uuid"

type FavoriteItemType string

const (
	FavoriteItemExcursion FavoriteItemType = "excursion"
	FavoriteItemCategory  FavoriteItemType = "category"
	FavoriteItemCountry   FavoriteItemType = "country"
)

func (t FavoriteItemType) Valid() bool {
	switch t {
	case FavoriteItemExcursion, FavoriteItemCategory, FavoriteItemCountry:
		return true
	}
	return false
}

// Favorite bookmarks exactly one target, discriminated by ItemType.
// ItemID points into the excursions, categories or countries table
// depending on the discriminator.
type Favorite struct {
	BaseModel
	UserID   uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_user_item"`
	ItemType FavoriteItemType `gorm:"size:10;not null;uniqueIndex:idx_favorites_user_item"`
	ItemID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item"`

	User User `gorm:"foreignKey:UserID"`
}
