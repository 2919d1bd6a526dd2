package request_models

type CreateReviewRequest struct {
	ExcursionID string   `json:"excursion_id" binding:"required,uuid"`
	Rating      int      `json:"rating" binding:"required"`
	Text        string   `json:"text" binding:"required"`
	Images      []string `json:"images"`
}

type UpdateReviewRequest struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

type ModerateReviewRequest struct {
	IsApproved bool `json:"is_approved"`
}
