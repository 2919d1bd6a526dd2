package db_models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type Booking struct {
	BaseModel
	ExcursionID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`

	Date        time.Time `gorm:"type:date;not null;index"`
	PeopleCount int       `gorm:"not null"`

	// Flat excursion price; not multiplied by PeopleCount.
	TotalPrice float64 `gorm:"type:numeric(10,2);not null"`

	Status          BookingStatus `gorm:"size:10;default:pending;index"`
	SpecialRequests string        `gorm:"type:text"`
	ContactPhone    string        `gorm:"size:20;not null"`
	ContactEmail    string        `gorm:"not null"`

	Excursion Excursion `gorm:"foreignKey:ExcursionID"`
	User      User      `gorm:"foreignKey:UserID"`
}

// CanTransitionTo enforces the booking state machine:
// pending → confirmed | cancelled, confirmed → completed.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted
	default:
		return false
	}
}
