// Package catalog implements the crawl-and-enrich pipeline and the derived
// views over the in-memory planet collection.
package catalog

import (
	"context"

	"planetarium/internal/metrics"
	"planetarium/internal/swapi"
)

// crawl follows the catalog's next links from startURL and concatenates
// every page's results in page order. Pages are fetched strictly
// sequentially because each next URL is only known once the prior page has
// resolved. Any page failure aborts the whole crawl; accumulated pages are
// discarded (no partial-success mode).
func crawl(ctx context.Context, client *swapi.Client, startURL string) ([]swapi.Planet, error) {
	var raw []swapi.Planet

	url := startURL
	for {
		page, err := client.FetchPage(ctx, url)
		if err != nil {
			return nil, err
		}
		metrics.RecordPageFetched()
		raw = append(raw, page.Results...)

		if page.Next == nil {
			return raw, nil
		}
		url = *page.Next
	}
}
