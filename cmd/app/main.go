package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"selexia/cmd/fx/account_fx"
	"selexia/cmd/fx/application_fx"
	"selexia/cmd/fx/booking_fx"
	"selexia/cmd/fx/catalog_fx"
	"selexia/cmd/fx/config_fx"
	"selexia/cmd/fx/controllers_fx"
	"selexia/cmd/fx/db_fx"
	"selexia/cmd/fx/excursion_fx"
	"selexia/cmd/fx/favorite_fx"
	"selexia/cmd/fx/gmail_fx"
	"selexia/cmd/fx/mail_fx"
	"selexia/cmd/fx/memcache_fx"
	"selexia/cmd/fx/review_fx"
	"selexia/internal/api/controllers"
	"selexia/internal/config"
	"selexia/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,

		account_fx.Module,
		catalog_fx.Module,
		excursion_fx.Module,
		booking_fx.Module,
		review_fx.Module,
		favorite_fx.Module,
		application_fx.Module,
		gmail_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

type routerControllers struct {
	fx.In

	Account     *controllers.AccountController
	Catalog     *controllers.CatalogController
	Excursion   *controllers.ExcursionController
	Booking     *controllers.BookingController
	Review      *controllers.ReviewController
	Favorite    *controllers.FavoriteController
	Application *controllers.ApplicationController
	Gmail       *controllers.GmailController
}

func ProvideRouter(ctrls routerControllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, ctrls)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrls routerControllers) {
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", ctrls.Account.Register)
	auth.POST("/login", ctrls.Account.Login)

	// Public catalog.
	v1.GET("/countries", ctrls.Catalog.ListCountries)
	v1.GET("/countries/:slug", ctrls.Catalog.GetCountry)
	v1.GET("/cities", ctrls.Catalog.ListCities)
	v1.GET("/categories", ctrls.Catalog.ListCategories)
	v1.GET("/categories/:slug", ctrls.Catalog.GetCategory)
	v1.GET("/search/autocomplete", ctrls.Catalog.Autocomplete)
	v1.GET("/stats", ctrls.Catalog.Stats)

	excursions := v1.Group("/excursions")
	excursions.GET("", ctrls.Excursion.List)
	excursions.GET("/popular", ctrls.Excursion.Popular)
	excursions.GET("/featured", ctrls.Excursion.Featured)
	excursions.GET("/:slug", ctrls.Excursion.GetBySlug)
	excursions.GET("/:slug/reviews", ctrls.Review.ListByExcursion)

	v1.POST("/applications", ctrls.Application.Create)

	// Gmail OAuth redirect comes back without our JWT, so the route
	// stays public; the state parameter carries the user binding.
	v1.GET("/account/gmail/callback", ctrls.Gmail.Callback)

	authed := v1.Group("")
	authed.Use(middleware.JWTAuthMiddleware())

	account := authed.Group("/account")
	account.GET("/profile", ctrls.Account.GetProfile)
	account.PUT("/profile", ctrls.Account.UpdateProfile)
	account.GET("/settings", ctrls.Account.GetSettings)
	account.PUT("/settings", ctrls.Account.UpdateSettings)
	account.POST("/gmail/connect", ctrls.Gmail.Connect)
	account.POST("/gmail/sync", ctrls.Gmail.Sync)
	account.DELETE("/gmail", ctrls.Gmail.Disconnect)

	bookings := authed.Group("/bookings")
	bookings.POST("", ctrls.Booking.Create)
	bookings.GET("", ctrls.Booking.ListMine)
	bookings.GET("/:id", ctrls.Booking.Get)
	bookings.POST("/:id/cancel", ctrls.Booking.Cancel)

	reviews := authed.Group("/reviews")
	reviews.POST("", ctrls.Review.Create)
	reviews.PUT("/:id", ctrls.Review.Update)
	reviews.DELETE("/:id", ctrls.Review.Delete)

	favorites := authed.Group("/favorites")
	favorites.GET("", ctrls.Favorite.List)
	favorites.POST("/toggle", ctrls.Favorite.Toggle)

	admin := v1.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/excursions", ctrls.Excursion.Create)
	admin.GET("/excursions/:id", ctrls.Excursion.GetByID)
	admin.PUT("/excursions/:id", ctrls.Excursion.Update)
	admin.GET("/bookings", ctrls.Booking.ListAll)
	admin.PUT("/bookings/:id/status", ctrls.Booking.UpdateStatus)
	admin.GET("/reviews/pending", ctrls.Review.ListPending)
	admin.PUT("/reviews/:id/moderate", ctrls.Review.Moderate)
	admin.GET("/applications", ctrls.Application.List)
	admin.GET("/applications/:id", ctrls.Application.Get)
	admin.PUT("/applications/:id/status", ctrls.Application.UpdateStatus)
}
