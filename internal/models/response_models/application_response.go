package response_models

type ApplicationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	Destination string `json:"destination,omitempty"`
	TravelDates string `json:"travel_dates,omitempty"`
	PeopleCount *int   `json:"people_count,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}
