package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"college-backend/config"
	"college-backend/controllers"
	"college-backend/data"
	"college-backend/models"
	"college-backend/repositories"
	"college-backend/routes"
	"college-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Fatal("JWT_SECRET environment variable is not set")
	}

	tokenTTL, err := time.ParseDuration(config.EnvOrDefault("JWT_EXPIRE", "168h"))
	if err != nil {
		logrus.Fatalf("invalid JWT_EXPIRE: %v", err)
	}

	if err := config.ConnectDatabase(); err != nil {
		logrus.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	logrus.Info("database connection established, migrations applied")

	catalog := models.NewCatalog()
	bookingRepo := repositories.NewBookingRepository(db)

	authService := services.NewAuthService(db, catalog,
		config.EnvOrDefault("EMAIL_DOMAIN", "srit.ac.in"),
		os.Getenv("FIRST_ADMIN_EMAIL"),
		jwtSecret, tokenTTL)
	bookingService := services.NewBookingService(bookingRepo, catalog)
	markService := services.NewMarkService(db, catalog)
	attendanceService := services.NewAttendanceService(db, catalog)
	announcementService := services.NewAnnouncementService(db)
	chatbotService := services.NewChatbotService(data.NewKnowledgeBase())

	router := routes.SetupRouter(
		controllers.NewAuthController(authService),
		controllers.NewBookingController(bookingService),
		controllers.NewMarkController(markService),
		controllers.NewAttendanceController(attendanceService),
		controllers.NewAnnouncementController(announcementService),
		controllers.NewChatbotController(chatbotService),
		db,
		jwtSecret,
	)

	port := config.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.Infof("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("server forced to shutdown: %v", err)
	}

	logrus.Info("server stopped gracefully")
}
