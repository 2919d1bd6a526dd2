package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ExcursionStatus string

const (
	ExcursionStatusDraft     ExcursionStatus = "draft"
	ExcursionStatusPublished ExcursionStatus = "published"
	ExcursionStatusArchived  ExcursionStatus = "archived"
)

type DurationUnit string

const (
	DurationHours DurationUnit = "hours"
	DurationDays  DurationUnit = "days"
)

// PopularViewsThreshold is the view count at which an excursion is
// permanently marked popular.
const PopularViewsThreshold = 100

type Excursion struct {
	BaseModel
	TitleRu            string `gorm:"size:200;not null"`
	TitleEn            string `gorm:"size:200;not null"`
	DescriptionRu      string `gorm:"type:text;not null"`
	DescriptionEn      string `gorm:"type:text"`
	ShortDescriptionRu string `gorm:"size:300"`
	ShortDescriptionEn string `gorm:"size:300"`
	ProgramRu          string `gorm:"type:text"`
	ProgramEn          string `gorm:"type:text"`
	IncludedRu         string `gorm:"type:text"`
	IncludedEn         string `gorm:"type:text"`
	ImportantInfoRu    string `gorm:"type:text"`
	ImportantInfoEn    string `gorm:"type:text"`
	MeetingPointRu     string `gorm:"size:300"`
	MeetingPointEn     string `gorm:"size:300"`

	CountryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CityID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`

	Price    float64 `gorm:"type:numeric(10,2);not null;index"`
	Currency string  `gorm:"size:3;default:USD"`

	Duration     int          `gorm:"not null"`
	DurationUnit DurationUnit `gorm:"size:5;default:hours"`
	MaxPeople    int          `gorm:"default:10"`

	Status ExcursionStatus `gorm:"size:10;default:draft;index"`
	Slug   string          `gorm:"size:200;uniqueIndex"`

	Images pq.StringArray `gorm:"type:text[]"`

	ViewsCount   int64   `gorm:"default:0;index"`
	Rating       float64 `gorm:"type:numeric(3,2);default:0;index"`
	ReviewsCount int64   `gorm:"default:0"`
	IsPopular    bool    `gorm:"default:false;index"`
	IsFeatured   bool    `gorm:"default:false;index"`

	Country  Country  `gorm:"foreignKey:CountryID"`
	City     City     `gorm:"foreignKey:CityID"`
	Category Category `gorm:"foreignKey:CategoryID"`

	Bookings []Booking `gorm:"foreignKey:ExcursionID"`
	Reviews  []Review  `gorm:"foreignKey:ExcursionID"`
}
