// Package swapi is the typed HTTP client for the remote planet catalog.
package swapi

// Page is one page of the paginated catalog. Next is nil on the last page.
type Page struct {
	Next    *string  `json:"next"`
	Results []Planet `json:"results"`
}

// Planet is the raw wire record. All scalar fields arrive as strings and
// are normalized downstream; Residents holds reference URLs.
type Planet struct {
	Name       string   `json:"name"`
	Climate    string   `json:"climate"`
	Terrain    string   `json:"terrain"`
	Population string   `json:"population"`
	Diameter   string   `json:"diameter"`
	Edited     string   `json:"edited"`
	Films      []string `json:"films"`
	Residents  []string `json:"residents"`
}

// person is the subset of a resident record the pipeline needs.
type person struct {
	Name string `json:"name"`
}
