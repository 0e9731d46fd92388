package main

import (
	"log"

	"github.com/M-odou/forumassirou-sub000/internal/config"
	"github.com/M-odou/forumassirou-sub000/internal/database"
	"github.com/M-odou/forumassirou-sub000/internal/handlers"
	"github.com/M-odou/forumassirou-sub000/internal/mail"
	"github.com/M-odou/forumassirou-sub000/internal/middleware"
	"github.com/M-odou/forumassirou-sub000/internal/services"
	"github.com/M-odou/forumassirou-sub000/internal/store"
	"github.com/M-odou/forumassirou-sub000/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	var primary store.Store
	primaryDB, err := database.Connect(cfg)
	if err != nil {
		log.Printf("database: primary unreachable, running on local fallback only: %v", err)
	} else {
		database.AutoMigrate(primaryDB)
		primary = store.NewGormStore(primaryDB)
	}

	fallbackDB := database.ConnectFallback(cfg.FallbackDBPath)
	database.AutoMigrate(fallbackDB)

	st := store.NewTwoTier(primary, store.NewGormStore(fallbackDB))

	hub := ws.NewHub()
	st.Subscribe(func() {
		hub.Broadcast(ws.Message{Type: "participants_changed"})
	})

	// Admin accounts live wherever the server booted; they are not part of
	// the two-tier participant store.
	adminDB := primaryDB
	if adminDB == nil {
		adminDB = fallbackDB
	}

	var mailer mail.Mailer
	if cfg.MailAPIKey != "" {
		mailer = mail.NewAPIMailer(cfg.MailAPIURL, cfg.MailAPIKey, cfg.MailSender)
	} else {
		log.Println("MAIL_API_KEY not set, confirmation emails disabled")
	}
	notifier := mail.NewNotifier(mailer, st)

	authService := services.NewAuthService(adminDB, cfg.JWTSecret)
	ticketService := services.NewTicketService(st)
	settingsService := services.NewSettingsService(st)
	registrationService := services.NewRegistrationService(st, ticketService, settingsService, notifier)
	validationService := services.NewValidationService(st, settingsService)

	authHandler := handlers.NewAuthHandler(authService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService, settingsService)
	scanHandler := handlers.NewScanHandler(validationService)
	participantHandler := handlers.NewParticipantHandler(st, validationService)
	ticketHandler := handlers.NewTicketHandler(st)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	wsHandler := handlers.NewWSHandler(hub, authService, cfg.ScanAPIKey)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Scan-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/ws/admin", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.POST("/registrations", registrationHandler.Register)
		api.GET("/registrations/open", registrationHandler.RegistrationOpen)
		api.GET("/tickets/:numero", ticketHandler.Get)

		scan := api.Group("/scan")
		scan.Use(middleware.ScanAuth(cfg.ScanAPIKey))
		{
			scan.POST("", scanHandler.Scan)
		}

		participants := api.Group("/participants")
		participants.Use(middleware.JWTAuth(authService))
		{
			participants.GET("", participantHandler.List)
			participants.GET("/export", participantHandler.Export)
			participants.DELETE("/:id", participantHandler.Delete)
			participants.POST("/:id/validate", participantHandler.Validate)
		}

		settings := api.Group("/settings")
		settings.Use(middleware.JWTAuth(authService))
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
