package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	api "ecorent-backend/internal/api/http"
	"ecorent-backend/internal/config"
	"ecorent-backend/internal/logger"
	"ecorent-backend/internal/repository/postgres"
	"ecorent-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EcoRent backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	clientSvc := service.NewClientService(store.ClientRepository, store.RentalRepository, store)
	equipmentSvc := service.NewEquipmentService(store.EquipmentRepository, store.RentalRepository, store)
	rentalSvc := service.NewRentalService(store.RentalRepository, store)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, store.RentalRepository, store)
	reportSvc := service.NewReportService(store.ReportRepository)

	// Set up HTTP server
	router := api.NewRouter(clientSvc, equipmentSvc, rentalSvc, paymentSvc, reportSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
