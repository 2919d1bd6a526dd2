package request_models

type CreateBookingRequest struct {
	ExcursionID     string `json:"excursion_id" binding:"required,uuid"`
	Date            string `json:"date" binding:"required"` // "2006-01-02"
	PeopleCount     int    `json:"people_count" binding:"required"`
	ContactPhone    string `json:"contact_phone" binding:"required"`
	ContactEmail    string `json:"contact_email" binding:"required,email"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}
