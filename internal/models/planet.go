package models

import (
	"encoding/json"
	"strconv"
)

// Sentinel values used in the enriched collection.
const (
	// NoResidents replaces an empty resident list after enrichment.
	NoResidents = "No notable residents"
	// UnknownResident replaces a resident whose lookup failed.
	UnknownResident = "Unknown Resident"
)

// Population is a planet population count that may be unknown.
// It marshals as a JSON number when known and as the literal
// string "unknown" otherwise.
type Population struct {
	Known bool
	Value int64
}

// KnownPopulation returns a known population of the given value.
func KnownPopulation(v int64) Population {
	return Population{Known: true, Value: v}
}

// MarshalJSON implements json.Marshaler.
func (p Population) MarshalJSON() ([]byte, error) {
	if !p.Known {
		return json.Marshal("unknown")
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Population) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Population{Known: true, Value: n}
		return nil
	}
	*p = Population{}
	return nil
}

// Less reports whether p sorts strictly below other. Unknown populations
// sort below every known value, including zero.
func (p Population) Less(other Population) bool {
	if p.Known != other.Known {
		return !p.Known
	}
	return p.Value < other.Value
}

// String returns the display form of the population.
func (p Population) String() string {
	if !p.Known {
		return "unknown"
	}
	return strconv.FormatInt(p.Value, 10)
}

// Planet is one enriched catalog record. Name is the identity and is
// unique within a crawl. Residents holds resolved display names (or the
// NoResidents sentinel), never reference URLs.
type Planet struct {
	Name       string     `json:"name"`
	Population Population `json:"population"`
	Terrains   []string   `json:"terrains"`
	Climate    string     `json:"climate"`
	Diameter   *int64     `json:"diameter"`
	Edited     string     `json:"edited"`
	FilmCount  int        `json:"film_count"`
	Residents  []string   `json:"residents"`
}
