package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideCatalogService,
	provideCountryRepo, provideCityRepo, provideCategoryRepo)

func provideCountryRepo(db *gorm.DB) repositories.CountryRepository {
	return repositories.NewCountryRepository(db)
}

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCatalogService(
	countryRepo repositories.CountryRepository,
	cityRepo repositories.CityRepository,
	categoryRepo repositories.CategoryRepository,
	excursionRepo repositories.ExcursionRepository,
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(countryRepo, cityRepo, categoryRepo, excursionRepo, reviewRepo, bookingRepo)
}
