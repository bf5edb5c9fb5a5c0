package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/medtrack-api/config"
	"github.com/jwalitptl/medtrack-api/internal/handler"
	assignmentHandler "github.com/jwalitptl/medtrack-api/internal/handler/assignment"
	dashboardHandler "github.com/jwalitptl/medtrack-api/internal/handler/dashboard"
	medicationHandler "github.com/jwalitptl/medtrack-api/internal/handler/medication"
	patientHandler "github.com/jwalitptl/medtrack-api/internal/handler/patient"
	"github.com/jwalitptl/medtrack-api/internal/middleware"
	"github.com/jwalitptl/medtrack-api/internal/repository/postgres"
	"github.com/jwalitptl/medtrack-api/internal/router"
	assignmentService "github.com/jwalitptl/medtrack-api/internal/service/assignment"
	dashboardService "github.com/jwalitptl/medtrack-api/internal/service/dashboard"
	medicationService "github.com/jwalitptl/medtrack-api/internal/service/medication"
	patientService "github.com/jwalitptl/medtrack-api/internal/service/patient"
	"github.com/jwalitptl/medtrack-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	patientRepo := postgres.NewPatientRepository(db)
	medicationRepo := postgres.NewMedicationRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)

	patientSvc := patientService.NewService(patientRepo, assignmentRepo)
	medicationSvc := medicationService.NewService(medicationRepo, assignmentRepo)
	assignmentSvc := assignmentService.NewService(assignmentRepo, patientRepo, medicationRepo)
	dashboardSvc := dashboardService.NewService(patientRepo, medicationRepo, assignmentRepo)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}

	r := router.NewRouter(
		handler.NewHandler(db),
		router.Config{
			RateLimitRPS:   cfg.RateLimit.RPS,
			RateLimitBurst: cfg.RateLimit.Burst,
			RequestTimeout: cfg.Server.RequestTimeout,
			CORS:           corsConfig,
			MetricsPrefix:  "medtrack",
		},
		patientHandler.NewHandler(patientSvc),
		medicationHandler.NewHandler(medicationSvc),
		assignmentHandler.NewHandler(assignmentSvc),
		dashboardHandler.NewHandler(dashboardSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
