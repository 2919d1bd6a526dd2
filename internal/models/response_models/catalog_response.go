package response_models

type CountryResponse struct {
	ID        string `json:"id"`
	NameRu    string `json:"name_ru"`
	NameEn    string `json:"name_en"`
	ISOCode   string `json:"iso_code"`
	Slug      string `json:"slug"`
	ImageURL  string `json:"image_url,omitempty"`
	IsPopular bool   `json:"is_popular"`
	CityCount int64  `json:"cities_count"`
	TourCount int64  `json:"excursions_count"`
}

type CityResponse struct {
	ID          string   `json:"id"`
	NameRu      string   `json:"name_ru"`
	NameEn      string   `json:"name_en"`
	Slug        string   `json:"slug"`
	CountrySlug string   `json:"country_slug"`
	CountryName string   `json:"country_name"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	IsPopular   bool     `json:"is_popular"`
}

type CategoryResponse struct {
	ID            string `json:"id"`
	NameRu        string `json:"name_ru"`
	NameEn        string `json:"name_en"`
	DescriptionRu string `json:"description_ru,omitempty"`
	DescriptionEn string `json:"description_en,omitempty"`
	Slug          string `json:"slug"`
	ImageURL      string `json:"image_url,omitempty"`
	Icon          string `json:"icon,omitempty"`
	Color         string `json:"color"`
	IsFeatured    bool   `json:"is_featured"`
}

type AutocompleteResult struct {
	Type  string `json:"type"` // city | country | category | excursion
	Value string `json:"value"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type StatsResponse struct {
	ExcursionsCount int64 `json:"excursions_count"`
	CountriesCount  int64 `json:"countries_count"`
	CitiesCount     int64 `json:"cities_count"`
	ReviewsCount    int64 `json:"reviews_count"`
	TotalBookings   int64 `json:"total_bookings"`
}
