package request_models

type ToggleFavoriteRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	ItemType string `json:"item_type" binding:"required"`
}
