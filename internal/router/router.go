package router

import (
	"time"

	"foodbridge/config"
	"foodbridge/internal/handler"
	"foodbridge/internal/middleware"
	"foodbridge/internal/models"
	"foodbridge/internal/repository"
	"foodbridge/internal/service"
	"foodbridge/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	listingSvc := service.NewListingService(listingRepo, notificationRepo)
	bookingSvc := service.NewBookingService(bookingRepo, listingRepo)
	conversationSvc := service.NewConversationService(conversationRepo)
	reviewSvc := service.NewReviewService(reviewRepo, notificationRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, notificationRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	checkoutSvc := service.NewCheckoutService(uow, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	listingHandler := handler.NewListingHandler(listingSvc, checkoutSvc, favoriteSvc)
	bookingHandler := handler.NewBookingHandler(bookingSvc, notificationSvc)
	chatHandler := handler.NewChatHandler(conversationSvc, authSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)
	donorMw := middleware.RequireRole(models.RoleDonor)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("", authHandler.GetProfile)
			me.PATCH("", authHandler.UpdateProfile)
			me.POST("/verify-email", authHandler.VerifyEmail)
			me.POST("/verify-phone", authHandler.VerifyPhone)
		}

		listings := api.Group("/listings")
		listings.Use(authMw)
		{
			listings.GET("", listingHandler.Browse)
			listings.GET("/mine", donorMw, listingHandler.Mine)
			listings.GET("/categories", listingHandler.Categories)
			listings.GET("/locations", listingHandler.Locations)
			listings.GET("/:id", listingHandler.Get)
			listings.POST("", donorMw, listingHandler.Create)
			listings.PATCH("/:id", donorMw, listingHandler.Update)
			listings.DELETE("/:id", donorMw, listingHandler.Delete)
			listings.POST("/:id/book", listingHandler.Book)
			listings.POST("/:id/favorite", listingHandler.ToggleFavorite)
		}
		api.GET("/favorites", authMw, listingHandler.Favorites)

		bookings := api.Group("/bookings")
		bookings.Use(authMw)
		{
			bookings.GET("", bookingHandler.List)
			bookings.PATCH("/:id/status", bookingHandler.Transition)
		}

		conversations := api.Group("/conversations")
		conversations.Use(authMw)
		{
			conversations.GET("", chatHandler.List)
			conversations.GET("/:id", chatHandler.Get)
			conversations.POST("/:id/messages", chatHandler.SendMessage)
		}

		users := api.Group("/users")
		users.Use(authMw)
		{
			users.POST("/:id/reviews", reviewHandler.Create)
			users.GET("/:id/reviews", reviewHandler.ListForUser)
			users.GET("/:id/rating", reviewHandler.Rating)
		}

		notifications := api.Group("/notifications")
		notifications.Use(authMw)
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}

		api.POST("/uploads/photo", authMw, uploadHandler.UploadPhoto)
	}

	return r
}
