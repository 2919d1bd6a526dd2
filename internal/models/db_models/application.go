package db_models

type ApplicationStatus string

const (
	ApplicationStatusNew        ApplicationStatus = "new"
	ApplicationStatusInProgress ApplicationStatus = "in_progress"
	ApplicationStatusCompleted  ApplicationStatus = "completed"
	ApplicationStatusCancelled  ApplicationStatus = "cancelled"
)

// Application is a lead-capture form submission from the landing page.
// It is not tied to an account and never becomes a booking by itself.
type Application struct {
	BaseModel
	Name        string `gorm:"size:100;not null"`
	Phone       string `gorm:"size:20;not null"`
	Email       string `gorm:"not null"`
	Message     string `gorm:"type:text;not null"`
	Destination string `gorm:"size:200"`
	TravelDates string `gorm:"size:100"`
	PeopleCount *int
	Budget      string            `gorm:"size:100"`
	Status      ApplicationStatus `gorm:"size:12;default:new;index"`
}

// CanTransitionTo enforces new → in_progress → completed/cancelled.
func (a *Application) CanTransitionTo(next ApplicationStatus) bool {
	switch a.Status {
	case ApplicationStatusNew:
		return next == ApplicationStatusInProgress || next == ApplicationStatusCompleted || next == ApplicationStatusCancelled
	case ApplicationStatusInProgress:
		return next == ApplicationStatusCompleted || next == ApplicationStatusCancelled
	default:
		return false
	}
}
