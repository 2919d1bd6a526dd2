package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	favoriteRepo repositories.FavoriteRepository,
	mailService services.MailServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, favoriteRepo, mailService)
}
