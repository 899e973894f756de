package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/uemerson199/hospitalcare-meta/internal/auth"
	"github.com/uemerson199/hospitalcare-meta/internal/doctors"
	"github.com/uemerson199/hospitalcare-meta/internal/inventory"
	"github.com/uemerson199/hospitalcare-meta/internal/patients"
	"github.com/uemerson199/hospitalcare-meta/internal/scheduling"
	"github.com/uemerson199/hospitalcare-meta/internal/server"
	"github.com/uemerson199/hospitalcare-meta/pkg/config"
	"github.com/uemerson199/hospitalcare-meta/pkg/database"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/monitoring"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Local development convenience; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info").WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel)
	log.WithComponent("admin-api").Info("Starting HospitalCare admin API")

	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.CreateSchema(context.Background()); err != nil {
		log.WithError(err).Fatal("Failed to create database schema")
	}

	userRepo := auth.NewRepository(db, log)
	patientRepo := patients.NewRepository(db, log)
	doctorRepo := doctors.NewRepository(db, log)
	schedulingRepo := scheduling.NewRepository(db, log)
	inventoryRepo := inventory.NewRepository(db, log)

	services := &server.Services{
		Auth:       auth.NewService(cfg, log, userRepo),
		Patients:   patients.NewService(log, patientRepo),
		Doctors:    doctors.NewService(log, doctorRepo),
		Scheduling: scheduling.NewService(log, schedulingRepo, patientRepo, doctorRepo),
		Inventory:  inventory.NewService(log, inventoryRepo),
	}

	health := monitoring.NewHealthManager("hospitalcare-admin-api")
	health.RegisterChecker("database", monitoring.NewDatabaseChecker("database", db.Health))

	srv := server.New(cfg, log, services, health)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("Server error")
		}
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}

	log.Info("Server stopped")
}
