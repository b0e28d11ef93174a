package jobs

import (
	"context"
	"errors"
	"log"
	"time"

	"planetarium/internal/catalog"
)

// Refresher periodically re-runs the catalog crawl so the collection
// tracks the remote source.
type Refresher struct {
	svc      *catalog.Service
	interval time.Duration
}

// NewRefresher creates a new background refresher.
func NewRefresher(svc *catalog.Service, interval time.Duration) *Refresher {
	return &Refresher{svc: svc, interval: interval}
}

// Start begins the background refresh loop. It runs one refresh
// immediately, then on every tick until the context is canceled.
func (r *Refresher) Start(ctx context.Context) {
	log.Printf("Catalog refresher started (interval: %v)", r.interval)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Catalog refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh runs one refresh, tolerating overlap with a manually triggered
// one.
func (r *Refresher) refresh(ctx context.Context) {
	err := r.svc.Refresh(ctx)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrRefreshInFlight):
		log.Println("Catalog refresher: refresh already in progress, skipping")
	default:
		log.Printf("Catalog refresher: refresh failed: %v", err)
	}
}
