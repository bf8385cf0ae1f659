package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/lromero/guestdesk/docs"
	"github.com/lromero/guestdesk/internal/config"
	"github.com/lromero/guestdesk/internal/database"
	"github.com/lromero/guestdesk/internal/group"
	"github.com/lromero/guestdesk/internal/guest"
	"github.com/lromero/guestdesk/internal/importer"
	"github.com/lromero/guestdesk/internal/report"
	"github.com/lromero/guestdesk/internal/rsvp"
	"github.com/lromero/guestdesk/internal/selection"
	"github.com/lromero/guestdesk/internal/wedding"
	mw "github.com/lromero/guestdesk/pkg/middleware"
)

// @title           GuestDesk API
// @version         1.0
// @description     Wedding guest and invitation management API.
// @BasePath        /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		bootLog := zerolog.New(os.Stdout)
		bootLog.Info().Msg("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	ttl, err := time.ParseDuration(cfg.VerificationTTL)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.VerificationTTL).Msg("Invalid VERIFICATION_TTL")
	}

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Connected to database successfully")

	// Selection store is shared by the selection endpoints and the bulk
	// guest operations that consume stored selections.
	selectionStore := selection.NewStore()

	// Wedding feature
	weddingRepo := wedding.NewRepository(db)
	weddingService := wedding.NewService(weddingRepo)
	weddingHandler := wedding.NewHandler(weddingService)

	// Group feature
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo, weddingService, log)
	groupHandler := group.NewHandler(groupService)

	// Guest feature (bulk operations read the selection store)
	guestRepo := guest.NewRepository(db)
	guestService := guest.NewService(guestRepo, weddingService, selectionStore, log)
	guestHandler := guest.NewHandler(guestService)

	// Selection feature
	selectionHandler := selection.NewHandler(selectionStore)

	// RSVP feature
	verifier := rsvp.NewVerifier(&rsvp.LogSender{Log: log}, ttl)
	rsvpRepo := rsvp.NewRepository(db)
	rsvpService := rsvp.NewService(rsvpRepo, groupRepo, guestRepo, verifier, log)
	rsvpHandler := rsvp.NewHandler(rsvpService)

	// Report feature
	reportService := report.NewService(guestRepo, groupRepo)
	reportHandler := report.NewHandler(reportService)

	// Importer feature
	importerService := importer.NewService(guestRepo, groupRepo, weddingService, log)
	importerHandler := importer.NewHandler(importerService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(mw.WeddingScope)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/wedding", weddingHandler.Routes())
		r.Mount("/groups", groupHandler.Routes())
		r.Mount("/guests", guestHandler.Routes())
		r.Mount("/selection", selectionHandler.Routes())
		r.Mount("/rsvp", rsvpHandler.Routes())
		r.Mount("/import", importerHandler.Routes())
		r.Mount("/reports", reportHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("port", port).Msg("Server starting")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
