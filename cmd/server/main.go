package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"planetarium/internal/catalog"
	"planetarium/internal/config"
	"planetarium/internal/jobs"
	"planetarium/internal/metrics"
	"planetarium/internal/server"
	"planetarium/internal/swapi"
	"planetarium/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if valid, msg := validation.ValidateFetchURL(cfg.CatalogURL); !valid {
		log.Fatalf("Invalid CATALOG_URL %q: %s", cfg.CatalogURL, msg)
	}

	// Initialize the catalog pipeline
	client := swapi.NewClient(cfg.RequestTimeout)
	svc := catalog.NewService(client, cfg.CatalogURL)
	metrics.Init(svc.Count)

	srv := server.New(cfg)
	srv.RegisterRoutes(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial crawl runs in the background; the API serves an empty
	// collection with loading state until it settles.
	if cfg.RefreshInterval > 0 {
		go jobs.NewRefresher(svc, cfg.RefreshInterval).Start(ctx)
	} else {
		go func() {
			if err := svc.Refresh(ctx); err != nil {
				log.Printf("Initial catalog refresh failed: %v", err)
			}
		}()
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()
	log.Printf("Server started on %s", cfg.ServerAddr)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
