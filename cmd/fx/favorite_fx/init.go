package favorite_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideFavoriteService, provideFavoriteRepo)

func provideFavoriteRepo(db *gorm.DB) repositories.FavoriteRepository {
	return repositories.NewFavoriteRepository(db)
}

func provideFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	excursionRepo repositories.ExcursionRepository,
	categoryRepo repositories.CategoryRepository,
	countryRepo repositories.CountryRepository,
) services.FavoriteServiceInterface {
	return services.NewFavoriteService(favoriteRepo, excursionRepo, categoryRepo, countryRepo)
}
