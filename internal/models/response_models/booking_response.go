package response_models

type BookingResponse struct {
	ID              string  `json:"id"`
	ExcursionID     string  `json:"excursion_id"`
	ExcursionTitle  string  `json:"excursion_title"`
	ExcursionSlug   string  `json:"excursion_slug"`
	Date            string  `json:"date"`
	PeopleCount     int     `json:"people_count"`
	TotalPrice      float64 `json:"total_price"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	ContactPhone    string  `json:"contact_phone"`
	ContactEmail    string  `json:"contact_email"`
	CreatedAt       string  `json:"created_at"`
}
