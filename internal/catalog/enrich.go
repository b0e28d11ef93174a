package catalog

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"planetarium/internal/models"
	"planetarium/internal/swapi"
)

// enrichConcurrency caps how many planets are enriched at once.
const enrichConcurrency = 4

// editedDisplayFormat anchors edited timestamps to UTC for display.
const editedDisplayFormat = "02 Jan 2006 15:04 MST"

// enrichAll normalizes every raw record and resolves its residents.
// Planets are enriched concurrently, but enrichAll returns only once every
// planet's resolver work has finished: completion is a join over the whole
// group, never fire-and-forget, so callers cannot observe a planet with
// unresolved residents.
func enrichAll(ctx context.Context, client *swapi.Client, raw []swapi.Planet) []models.Planet {
	planets := make([]models.Planet, len(raw))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, r := range raw {
		g.Go(func() error {
			p := normalize(r)
			p.Residents = resolveResidents(gctx, client, r.Residents)
			planets[i] = p
			return nil
		})
	}
	_ = g.Wait()

	return planets
}

// normalize converts a raw wire record into the canonical entity. Residents
// are left nil; the resolver fills them in.
func normalize(r swapi.Planet) models.Planet {
	return models.Planet{
		Name:       r.Name,
		Population: parsePopulation(r.Population),
		Terrains:   splitLabels(r.Terrain),
		Climate:    primaryLabel(r.Climate),
		Diameter:   parseDiameter(r.Diameter),
		Edited:     formatEdited(r.Edited),
		FilmCount:  len(r.Films),
	}
}

// parsePopulation parses a base-10 population count. The literal "unknown",
// unparseable values, and negative values all map to the unknown sentinel.
func parsePopulation(s string) models.Population {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return models.Population{}
	}
	return models.KnownPopulation(n)
}

// parseDiameter parses a diameter in kilometers, nil when unknown or
// unparseable.
func parseDiameter(s string) *int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

// splitLabels splits a comma-separated label list, trimming whitespace and
// dropping empty entries. Label order is preserved.
func splitLabels(s string) []string {
	parts := strings.Split(s, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if label := strings.TrimSpace(p); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}

// primaryLabel returns the first label of a comma-separated list.
func primaryLabel(s string) string {
	first, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(first)
}

// formatEdited renders an RFC 3339 timestamp in the fixed UTC display
// format. Unparseable values pass through untouched.
func formatEdited(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.UTC().Format(editedDisplayFormat)
}

// sortByPopulation orders the collection by population descending, with
// unknown populations below every known value including zero. The sort is
// stable so planets with equal populations keep their crawl order.
func sortByPopulation(planets []models.Planet) {
	sort.SliceStable(planets, func(i, j int) bool {
		return planets[j].Population.Less(planets[i].Population)
	})
}
