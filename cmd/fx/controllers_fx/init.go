package controllers_fx

import (
	"go.uber.org/fx"

	"selexia/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewExcursionController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewReviewController),
	fx.Provide(controllers.NewFavoriteController),
	fx.Provide(controllers.NewApplicationController),
	fx.Provide(controllers.NewGmailController))
