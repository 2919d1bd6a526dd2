package application_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"selexia/internal/repositories"
	"selexia/internal/services"
)

var Module = fx.Provide(
	provideApplicationService, provideApplicationRepo)

func provideApplicationRepo(db *gorm.DB) repositories.ApplicationRepository {
	return repositories.NewApplicationRepository(db)
}

func provideApplicationService(
	applicationRepo repositories.ApplicationRepository,
	mailService services.MailServiceInterface,
) services.ApplicationServiceInterface {
	return services.NewApplicationService(applicationRepo, mailService)
}
