package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for pipeline metrics.
const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
)

var (
	pagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planetarium_pages_fetched_total",
		Help: "Total catalog pages fetched across all crawls",
	})

	residentResolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planetarium_resident_resolutions_total",
		Help: "Total resident lookups by outcome",
	}, []string{"outcome"})

	crawls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planetarium_crawls_total",
		Help: "Total crawl attempts by outcome",
	}, []string{"outcome"})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planetarium_http_requests_total",
		Help: "Total HTTP requests by route and status",
	}, []string{"route", "status"})

	planetCountDesc = prometheus.NewDesc(
		"planetarium_planets",
		"Current size of the settled planet collection",
		nil,
		nil,
	)
)

// PlanetCountCollector is a custom Prometheus collector that reads the
// collection size on each scrape.
type PlanetCountCollector struct {
	size func() int
}

// Describe sends the metric descriptor to the channel.
func (c *PlanetCountCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- planetCountDesc
}

// Collect emits the current collection size as a gauge.
func (c *PlanetCountCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(planetCountDesc, prometheus.GaugeValue, float64(c.size()))
}

var initOnce sync.Once

// Init registers all collectors. Must be called once at startup; size
// reports the current collection length.
func Init(size func() int) {
	initOnce.Do(func() {
		prometheus.MustRegister(pagesFetched, residentResolutions, crawls, httpRequests)
		prometheus.MustRegister(&PlanetCountCollector{size: size})
	})
}

// RecordPageFetched counts one fetched catalog page.
func RecordPageFetched() {
	pagesFetched.Inc()
}

// RecordResidentResolution counts one resident lookup by outcome.
func RecordResidentResolution(outcome string) {
	residentResolutions.WithLabelValues(outcome).Inc()
}

// RecordCrawl counts one finished crawl attempt by outcome.
func RecordCrawl(outcome string) {
	crawls.WithLabelValues(outcome).Inc()
}

// RecordHTTPRequest counts one completed HTTP request.
func RecordHTTPRequest(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}
