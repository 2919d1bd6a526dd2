package db_models

type Country struct {
	BaseModel
	NameRu    string `gorm:"size:100;not null"`
	NameEn    string `gorm:"size:100;not null"`
	ISOCode   string `gorm:"size:3;uniqueIndex"`
	Slug      string `gorm:"size:100;uniqueIndex"`
	ImageURL  string
	IsPopular bool `gorm:"default:false;index"`

	Cities     []City      `gorm:"foreignKey:CountryID"`
	Excursions []Excursion `gorm:"foreignKey:CountryID"`
}
