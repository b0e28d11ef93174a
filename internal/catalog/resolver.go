package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"planetarium/internal/metrics"
	"planetarium/internal/models"
	"planetarium/internal/swapi"
)

// resolverConcurrency caps simultaneous resident lookups for one planet.
const resolverConcurrency = 8

// resolveResidents resolves every resident reference URL of one planet into
// a display name. Lookups run concurrently and are joined before returning;
// result order matches input order. A failed lookup degrades to the
// UnknownResident fallback and never aborts its siblings. An empty input
// resolves to the NoResidents sentinel without issuing any request.
func resolveResidents(ctx context.Context, client *swapi.Client, urls []string) []string {
	if len(urls) == 0 {
		return []string{models.NoResidents}
	}

	names := make([]string, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolverConcurrency)
	for i, url := range urls {
		g.Go(func() error {
			name, err := client.FetchResidentName(gctx, url)
			if err != nil {
				slog.Debug("resident lookup failed", "url", url, "error", err)
				metrics.RecordResidentResolution(metrics.OutcomeFallback)
				names[i] = models.UnknownResident
				return nil
			}
			metrics.RecordResidentResolution(metrics.OutcomeResolved)
			names[i] = name
			return nil
		})
	}

	// Tasks absorb their own failures, so Wait is purely the join barrier.
	_ = g.Wait()

	return names
}
