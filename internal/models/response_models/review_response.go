package response_models

type ReviewResponse struct {
	ID          string   `json:"id"`
	ExcursionID string   `json:"excursion_id"`
	UserName    string   `json:"user_name"`
	Rating      int      `json:"rating"`
	Text        string   `json:"text"`
	IsApproved  bool     `json:"is_approved"`
	Images      []string `json:"images,omitempty"`
	CreatedAt   string   `json:"created_at"`
}
