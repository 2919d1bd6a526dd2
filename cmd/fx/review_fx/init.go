package review_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewRepo)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideReviewService(
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
	excursionRepo repositories.ExcursionRepository,
) services.ReviewServiceInterface {
	return services.NewReviewService(reviewRepo, bookingRepo, excursionRepo)
}
