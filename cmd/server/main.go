package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/avdberg/Budget-Planner-Backend/internal/api"
	"github.com/avdberg/Budget-Planner-Backend/internal/config"
	"github.com/avdberg/Budget-Planner-Backend/internal/database"
	"github.com/avdberg/Budget-Planner-Backend/internal/repository"
	"github.com/avdberg/Budget-Planner-Backend/internal/service"
	"github.com/avdberg/Budget-Planner-Backend/internal/source"
	"github.com/avdberg/Budget-Planner-Backend/internal/upbank"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	transactionRepo := repository.NewTransactionRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Select the data source: synthetic generator or bank-API-backed cache
	client := upbank.NewClient(cfg.Source.Token)
	settingsService, err := service.NewSettingsService(settingsRepo, client, cfg.Source.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}
	if err := settingsService.LoadStoredToken(); err != nil {
		log.Printf("Warning: %v", err)
	}

	var budgetSource source.BudgetSource
	if cfg.Source.UseMock {
		budgetSource = source.NewMock(cfg.Source.MockSeed)
	} else {
		budgetSource = source.NewBank(client, transactionRepo, accountRepo, cfg.Database.DataDir)
	}
	log.Printf("Using %s data source", budgetSource.Kind())

	// Create services
	systemService := service.NewSystemService(db)
	budgetService := service.NewBudgetService(budgetSource)

	if cfg.Source.RefreshOnStart {
		if err := budgetService.RefreshAll(context.Background()); err != nil {
			log.Printf("Initial cache refresh failed: %v", err)
		}
	}

	// Scheduled cache refresh (live source only)
	var scheduler *cron.Cron
	if cfg.Source.RefreshSchedule != "" && !cfg.Source.UseMock {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.Source.RefreshSchedule, func() {
			if err := budgetService.RefreshAll(context.Background()); err != nil {
				log.Printf("Scheduled cache refresh failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Invalid refresh schedule %q: %v", cfg.Source.RefreshSchedule, err)
		}
		scheduler.Start()
		log.Printf("Scheduled cache refresh: %s", cfg.Source.RefreshSchedule)
	}

	// Create router
	router := api.NewRouter(systemService, budgetService, settingsService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
