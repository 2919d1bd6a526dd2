package response_models

type FavoriteToggleResponse struct {
	IsFavorite     bool  `json:"is_favorite"`
	FavoritesCount int64 `json:"favorites_count"`
}

// FavoriteItem resolves a bookmark to a display summary of its target.
type FavoriteItem struct {
	ItemID   string  `json:"item_id"`
	ItemType string  `json:"item_type"`
	TitleRu  string  `json:"title_ru"`
	TitleEn  string  `json:"title_en"`
	Slug     string  `json:"slug"`
	Price    float64 `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	AddedAt  string  `json:"added_at"`
}
