package booking_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideBookingRepo)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	excursionRepo repositories.ExcursionRepository,
	mailService services.MailServiceInterface,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, excursionRepo, mailService)
}
