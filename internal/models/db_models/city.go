package db_models

import "github.com/google/uuid"

type City struct {
	BaseModel
	NameRu    string    `gorm:"size:100;not null"`
	NameEn    string    `gorm:"size:100;not null"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_cities_country_slug"`
	Slug      string    `gorm:"size:100;uniqueIndex:idx_cities_country_slug"`
	Latitude  *float64  `gorm:"type:numeric(9,6)"`
	Longitude *float64  `gorm:"type:numeric(9,6)"`
	ImageURL  string
	IsPopular bool `gorm:"default:false;index"`

	Country    Country     `gorm:"foreignKey:CountryID"`
	Excursions []Excursion `gorm:"foreignKey:CityID"`
}
