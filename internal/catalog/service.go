package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"planetarium/internal/metrics"
	"planetarium/internal/models"
	"planetarium/internal/swapi"
)

// Service owns the in-memory planet collection and drives the
// crawl-and-enrich pipeline. Each refresh replaces the collection
// wholesale; between refreshes it is read-only.
type Service struct {
	client     *swapi.Client
	catalogURL string

	mu          sync.RWMutex
	planets     []models.Planet
	loading     bool
	lastErr     string
	lastRefresh *time.Time
}

// NewService creates a catalog service crawling from catalogURL.
func NewService(client *swapi.Client, catalogURL string) *Service {
	return &Service{client: client, catalogURL: catalogURL}
}

// Refresh runs one full crawl-and-enrich cycle and swaps in the resulting
// collection. It returns only after every planet's resident resolution has
// joined, so settlement is causally downstream of all outstanding work,
// success or failure. A refresh triggered while another is in flight is
// rejected with ErrRefreshInFlight.
func (s *Service) Refresh(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	return s.run(ctx)
}

// StartRefresh takes the refresh guard and runs the crawl in the
// background. The guard is taken before returning, so concurrent triggers
// see ErrRefreshInFlight synchronously; the crawl itself is detached and
// runs to completion regardless of the caller's lifetime.
func (s *Service) StartRefresh(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	go func() {
		// Failures are recorded in the tracker state and logged by run.
		_ = s.run(ctx)
	}()
	return nil
}

// begin atomically claims the in-flight guard and enters loading state.
func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return ErrRefreshInFlight
	}
	s.loading = true
	s.lastErr = ""
	return nil
}

// run executes the crawl-and-enrich cycle. The caller must hold the
// in-flight guard via begin; run releases it when the join completes.
func (s *Service) run(ctx context.Context) error {
	refreshID := uuid.NewString()
	start := time.Now()
	slog.Info("catalog refresh started", "refresh_id", refreshID, "url", s.catalogURL)

	raw, err := crawl(ctx, s.client, s.catalogURL)
	if err != nil {
		metrics.RecordCrawl(metrics.OutcomeError)
		slog.Error("catalog crawl failed", "refresh_id", refreshID, "error", err)

		// The previous collection stays in place; only the error surfaces.
		s.mu.Lock()
		s.loading = false
		s.lastErr = err.Error()
		s.mu.Unlock()
		return err
	}

	planets := enrichAll(ctx, s.client, raw)
	sortByPopulation(planets)

	now := time.Now()
	s.mu.Lock()
	s.planets = planets
	s.loading = false
	s.lastRefresh = &now
	s.mu.Unlock()

	metrics.RecordCrawl(metrics.OutcomeSuccess)
	slog.Info("catalog refresh settled",
		"refresh_id", refreshID,
		"planets", len(planets),
		"elapsed", time.Since(start))
	return nil
}

// Planets returns a copy of the current settled collection, sorted by
// population descending.
func (s *Service) Planets() []models.Planet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	planets := make([]models.Planet, len(s.planets))
	copy(planets, s.planets)
	return planets
}

// Count returns the size of the current collection.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.planets)
}

// Status reports the refresh state. Settled means a triggered refresh has
// fully completed, whether by success or recorded failure; a service that
// has never refreshed is not settled, so consumers cannot mistake the empty
// boot collection for a final one.
func (s *Service) Status() models.StatusResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.StatusResponse{
		Loading:     s.loading,
		Settled:     !s.loading && (s.lastRefresh != nil || s.lastErr != ""),
		Error:       s.lastErr,
		Count:       len(s.planets),
		LastRefresh: s.lastRefresh,
	}
}
