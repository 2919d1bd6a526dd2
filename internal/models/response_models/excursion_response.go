package response_models

type ExcursionListItem struct {
	ID                 string  `json:"id"`
	Slug               string  `json:"slug"`
	TitleRu            string  `json:"title_ru"`
	TitleEn            string  `json:"title_en"`
	ShortDescriptionRu string  `json:"short_description_ru"`
	ShortDescriptionEn string  `json:"short_description_en"`
	CountryName        string  `json:"country_name"`
	CountrySlug        string  `json:"country_slug"`
	CityName           string  `json:"city_name"`
	CitySlug           string  `json:"city_slug"`
	CategoryName       string  `json:"category_name"`
	CategorySlug       string  `json:"category_slug"`
	Price              float64 `json:"price"`
	Currency           string  `json:"currency"`
	Duration           int     `json:"duration"`
	DurationUnit       string  `json:"duration_unit"`
	MaxPeople          int     `json:"max_people"`
	Rating             float64 `json:"rating"`
	ReviewsCount       int64   `json:"reviews_count"`
	ViewsCount         int64   `json:"views_count"`
	IsPopular          bool    `json:"is_popular"`
	IsFeatured         bool    `json:"is_featured"`
	MainImage          string  `json:"main_image,omitempty"`
}

type ExcursionDetail struct {
	ExcursionListItem
	DescriptionRu   string   `json:"description_ru"`
	DescriptionEn   string   `json:"description_en"`
	ProgramRu       string   `json:"program_ru"`
	ProgramEn       string   `json:"program_en"`
	IncludedRu      string   `json:"included_ru"`
	IncludedEn      string   `json:"included_en"`
	ImportantInfoRu string   `json:"important_info_ru"`
	ImportantInfoEn string   `json:"important_info_en"`
	MeetingPointRu  string   `json:"meeting_point_ru"`
	MeetingPointEn  string   `json:"meeting_point_en"`
	Status          string   `json:"status"`
	Images          []string `json:"images"`
	CreatedAt       string   `json:"created_at"`
}
