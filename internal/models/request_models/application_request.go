package request_models

type CreateApplicationRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Message     string `json:"message" binding:"required"`
	Destination string `json:"destination"`
	TravelDates string `json:"travel_dates"`
	PeopleCount *int   `json:"people_count"`
	Budget      string `json:"budget"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new in_progress completed cancelled"`
}
