package db_models

// Category groups excursions by theme (city tours, hiking, museums, ...).
type Category struct {
	BaseModel
	NameRu        string `gorm:"size:100;not null"`
	NameEn        string `gorm:"size:100;not null"`
	DescriptionRu string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`
	Slug          string `gorm:"size:100;uniqueIndex"`
	ImageURL      string
	Icon          string `gorm:"size:50"`
	Color         string `gorm:"size:7;default:#007bff"`
	IsFeatured    bool   `gorm:"default:false;index"`

	Excursions []Excursion `gorm:"foreignKey:CategoryID"`
}
