package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trip-planner/internal/api"
	"trip-planner/internal/config"
	"trip-planner/internal/modules/auth"
	"trip-planner/internal/modules/budget"
	"trip-planner/internal/modules/itinerary"
	"trip-planner/internal/modules/planner"
	"trip-planner/internal/modules/routes"
	"trip-planner/internal/modules/trips"
	"trip-planner/pkg/email"
	"trip-planner/pkg/gemini"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	e := echo.New()

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173", cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 3. --- Generative backend client ---
	// A missing credential is only a warning here: the API still serves
	// archived trips and the session endpoints. Generation itself fails
	// until the key is configured.
	var generator planner.Generator
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY is not set; trip generation will fail until it is configured")
	} else {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		generator = client
	}

	// 4. --- Trip archive storage ---
	// With a DATABASE_URL the archive lives in PostgreSQL; without one it
	// degrades to process-local memory.
	var tripRepo trips.RepositoryInterface
	if cfg.DatabaseURL != "" {
		dbConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to parse database configuration: %v", err)
		}
		dbPool, err := pgxpool.NewWithConfig(ctx, dbConfig)
		if err != nil {
			log.Fatalf("Unable to create connection pool: %v", err)
		}
		defer dbPool.Close()

		if err := dbPool.Ping(ctx); err != nil {
			log.Fatalf("Unable to ping database: %v", err)
		}
		tripRepo = trips.NewRepository(dbPool)
	} else {
		log.Println("DATABASE_URL is not set; archiving trips in memory")
		tripRepo = trips.NewMemoryRepository()
	}

	// 5. --- Email delivery ---
	var emailSender email.ServiceInterface
	if cfg.AWSRegion != "" && cfg.EmailFrom != "" {
		sender, err := email.NewSender(ctx, cfg.AWSRegion, cfg.EmailFrom)
		if err != nil {
			log.Fatalf("Failed to create SES sender: %v", err)
		}
		emailSender = sender
	} else {
		log.Println("AWS_REGION or EMAIL_FROM is not set; itinerary sharing by email is disabled")
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		log.Fatalf("Failed to parse email templates: %v", err)
	}

	// 6. --- Dependency Injection (Wiring everything up) ---
	session := itinerary.NewSession()

	tripService := trips.NewService(tripRepo, emailSender, templates)
	tripHandler := trips.NewHandler(tripService)

	plannerService := planner.NewService(generator, tripService, session, cfg.GroundingEnabled)
	plannerHandler := planner.NewHandler(plannerService)

	itineraryHandler := itinerary.NewHandler(session)
	routeHandler := routes.NewHandler(session)
	budgetHandler := budget.NewHandler(session)

	authService := auth.NewService(cfg.ServiceAccessKey, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	// 7. --- Initialize Router ---
	api.SetupRoutes(e, cfg.JWTSecret,
		authHandler,
		plannerHandler,
		itineraryHandler,
		routeHandler,
		budgetHandler,
		tripHandler,
	)

	// 8. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server, an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}
