package gmail_fx

import (
	"go.uber.org/fx"

	"selexia/internal/config"
	"selexia/internal/repositories"
	"selexia/internal/services"
	mem "selexia/pkg/memcache"
)

var Module = fx.Provide(provideGmailService)

func provideGmailService(
	cfg *config.Config,
	accountRepo repositories.AccountRepository,
	favoriteRepo repositories.FavoriteRepository,
	states mem.OAuthStateStore,
) services.GmailServiceInterface {
	return services.NewGmailService(cfg, accountRepo, favoriteRepo, states)
}
