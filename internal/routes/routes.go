package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fyyurhq/fyyur-api/internal/audit"
	"github.com/fyyurhq/fyyur-api/internal/cache"
	"github.com/fyyurhq/fyyur-api/internal/config"
	"github.com/fyyurhq/fyyur-api/internal/handlers"
	infraRepo "github.com/fyyurhq/fyyur-api/internal/infra/repository"
	"github.com/fyyurhq/fyyur-api/internal/middleware"
	ucBooking "github.com/fyyurhq/fyyur-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	availabilityCache := cache.NewAvailabilityCache(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	editArtistUC := ucBooking.NewEditArtist(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	deleteArtistUC := ucBooking.NewDeleteArtist(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	submitShowUC := ucBooking.NewSubmitShow(
		bookingRepo,
		auditDispatcher,
	)

	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availabilityCache,
	)

	listShowsUC := ucBooking.NewListUpcomingShows(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	artistHandler := handlers.NewArtistHandler(db, editArtistUC, deleteArtistUC)
	venueHandler := handlers.NewVenueHandler(db)
	showHandler := handlers.NewShowHandler(submitShowUC, listShowsUC)
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC BROWSE
		// ------------------------------
		api.GET("/venues", venueHandler.List)
		api.POST("/venues/search", venueHandler.Search)
		api.GET("/venues/:id", venueHandler.Get)

		api.GET("/artists", artistHandler.List)
		api.POST("/artists/search", artistHandler.Search)
		api.GET("/artists/:id", artistHandler.Get)
		api.GET("/artists/:id/availability", availabilityHandler.Get)

		api.GET("/shows", showHandler.List)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/venues", venueHandler.Create)
			secured.PUT("/venues/:id", venueHandler.Update)
			secured.DELETE("/venues/:id", venueHandler.Delete)

			secured.POST("/artists", artistHandler.Create)
			secured.PUT("/artists/:id", artistHandler.Update)
			secured.DELETE("/artists/:id", artistHandler.Delete)

			secured.POST("/shows", showHandler.Create)
		}
	}
}
