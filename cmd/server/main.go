package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wynet321/fund-insight-backend/internal/api"
	"github.com/wynet321/fund-insight-backend/internal/config"
	"github.com/wynet321/fund-insight-backend/internal/database"
	"github.com/wynet321/fund-insight-backend/internal/fundapi"
	"github.com/wynet321/fund-insight-backend/internal/repository"
	"github.com/wynet321/fund-insight-backend/internal/scheduler"
	"github.com/wynet321/fund-insight-backend/internal/service"
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

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create provider client, repositories and services
	client := fundapi.NewHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	catalogRepo := repository.NewCatalogRepository(db)

	fundService := service.NewFundService(client)
	catalogService := service.NewCatalogService(
		client,
		catalogRepo,
		cfg.Catalog.FundTypes,
		cfg.Catalog.PageSize,
	)

	// Schedule the periodic catalog refresh
	schedCtx, cancelSched := context.WithCancel(context.Background())
	defer cancelSched()

	sched := scheduler.New(schedCtx, catalogService)
	if err := sched.Register(cfg.Catalog.CronSpec); err != nil {
		log.Fatalf("Failed to register scheduler jobs: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(db, client, fundService, catalogService, cfg)

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

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
