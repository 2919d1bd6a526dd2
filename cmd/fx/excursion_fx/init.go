package excursion_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideExcursionService, provideExcursionRepo)

func provideExcursionRepo(db *gorm.DB) repositories.ExcursionRepository {
	return repositories.NewExcursionRepository(db)
}

func provideExcursionService(
	excursionRepo repositories.ExcursionRepository,
	countryRepo repositories.CountryRepository,
	cityRepo repositories.CityRepository,
	categoryRepo repositories.CategoryRepository,
) services.ExcursionServiceInterface {
	return services.NewExcursionService(excursionRepo, countryRepo, cityRepo, categoryRepo)
}
