package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/eventlite/eventlite-api/internal/config"
	"github.com/eventlite/eventlite-api/internal/database"
	"github.com/eventlite/eventlite-api/internal/handlers"
	"github.com/eventlite/eventlite-api/internal/middleware"
	"github.com/eventlite/eventlite-api/internal/models"
	"github.com/eventlite/eventlite-api/internal/repository"
	"github.com/eventlite/eventlite-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions("eventlite_session", store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	eventService := services.NewEventService(eventRepo, interactionRepo)
	interactionService := services.NewInteractionService(interactionRepo, eventRepo, userRepo)
	notificationService := services.NewNotificationService(notificationRepo, interactionRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "EventLite API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Public event catalog
		events := api.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/:id", eventHandler.GetEvent)

			// Attendee interactions (data endpoints: 401/403 denials)
			events.POST("/:id/bookmark", middleware.RequireAuth(), middleware.RequireRole(models.RoleAttendee), interactionHandler.ToggleBookmark)
			events.POST("/:id/comments", middleware.RequireAuth(), middleware.RequireRole(models.RoleAttendee), interactionHandler.AddComment)
		}

		// Organizer surface (page flows: unauthenticated users are sent to
		// the login page)
		organizer := api.Group("/organizer/events")
		organizer.Use(middleware.RequireRolePage(models.RoleOrganizer, "/login"))
		{
			organizer.GET("", eventHandler.ListOrganizerEvents)
			organizer.POST("", eventHandler.CreateEvent)
			organizer.PUT("/:id", middleware.RequireEventOwner(), eventHandler.UpdateEvent)
			organizer.DELETE("/:id", middleware.RequireEventOwner(), eventHandler.DeleteEvent)
			organizer.POST("/:id/sessions", middleware.RequireEventOwner(), eventHandler.CreateSession)
		}

		// Current-user routes (protected)
		me := api.Group("/me")
		me.Use(middleware.RequireAuth())
		{
			me.GET("/counts", notificationHandler.GetCounts)
			me.GET("/notifications", notificationHandler.ListNotifications)
			me.POST("/notifications/:id/read", notificationHandler.MarkRead)
			me.POST("/notifications/read-all", notificationHandler.MarkAllRead)
			me.GET("/bookmarks", middleware.RequireRole(models.RoleAttendee), interactionHandler.ListBookmarks)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
