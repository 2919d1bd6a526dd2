package request_models

// ExcursionFilter collects the catalog query parameters. Zero values
// mean "not filtered".
type ExcursionFilter struct {
	Search     string
	Country    string // country slug
	City       string // city slug
	Category   string // category slug
	PriceMin   *float64
	PriceMax   *float64
	RatingMin  *float64
	IsPopular  *bool
	IsFeatured *bool
	Sort       string // popular | price_asc | price_desc | rating | newest
	Page       int
	PageSize   int
}

type SaveExcursionRequest struct {
	TitleRu            string   `json:"title_ru" binding:"required"`
	TitleEn            string   `json:"title_en"`
	DescriptionRu      string   `json:"description_ru" binding:"required"`
	DescriptionEn      string   `json:"description_en"`
	ShortDescriptionRu string   `json:"short_description_ru"`
	ShortDescriptionEn string   `json:"short_description_en"`
	ProgramRu          string   `json:"program_ru"`
	ProgramEn          string   `json:"program_en"`
	IncludedRu         string   `json:"included_ru"`
	IncludedEn         string   `json:"included_en"`
	ImportantInfoRu    string   `json:"important_info_ru"`
	ImportantInfoEn    string   `json:"important_info_en"`
	MeetingPointRu     string   `json:"meeting_point_ru"`
	MeetingPointEn     string   `json:"meeting_point_en"`
	CountryID          string   `json:"country_id" binding:"required,uuid"`
	CityID             string   `json:"city_id" binding:"required,uuid"`
	CategoryID         string   `json:"category_id" binding:"required,uuid"`
	Price              float64  `json:"price" binding:"required,gt=0"`
	Currency           string   `json:"currency"`
	Duration           int      `json:"duration" binding:"required,gt=0"`
	DurationUnit       string   `json:"duration_unit" binding:"omitempty,oneof=hours days"`
	MaxPeople          int      `json:"max_people" binding:"omitempty,gt=0"`
	Status             string   `json:"status" binding:"omitempty,oneof=draft published archived"`
	Slug               string   `json:"slug"`
	Images             []string `json:"images"`
	IsFeatured         *bool    `json:"is_featured"`
}
