package catalog

import (
	"reflect"
	"testing"

	"planetarium/internal/models"
)

func viewFixture() []models.Planet {
	return []models.Planet{
		{
			Name:      "Tatooine",
			Terrains:  []string{"arid", "desert"},
			Residents: []string{"Luke Skywalker", "C-3PO"},
		},
		{
			Name:      "Alderaan",
			Terrains:  []string{"grasslands", "mountains"},
			Residents: []string{"Leia Organa"},
		},
		{
			Name:      "Dagobah",
			Terrains:  []string{"swamp", "jungles"},
			Residents: []string{models.NoResidents},
		},
	}
}

func TestUniqueTerrains(t *testing.T) {
	planets := []models.Planet{
		{Terrains: []string{"desert", "canyons"}},
		{Terrains: []string{"grasslands", "desert"}},
		{Terrains: []string{"swamp"}},
	}

	got := UniqueTerrains(planets)
	want := []string{"canyons", "desert", "grasslands", "swamp"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueTerrains = %v, want %v", got, want)
	}
}

func TestUniqueTerrainsEmptyCollection(t *testing.T) {
	if got := UniqueTerrains(nil); len(got) != 0 {
		t.Errorf("UniqueTerrains(nil) = %v, want empty", got)
	}
}

func TestFilterPlanetsByTerrain(t *testing.T) {
	got := FilterPlanets(viewFixture(), "desert", "")

	if len(got) != 1 || got[0].Name != "Tatooine" {
		t.Fatalf("terrain filter %q matched %v, want only Tatooine", "desert", names(got))
	}
}

func TestFilterPlanetsBySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches resident name", "luke", []string{"Tatooine"}},
		{"matches planet name", "alde", []string{"Alderaan"}},
		{"case insensitive", "LEIA", []string{"Alderaan"}},
		{"no match", "chewbacca", []string{}},
		{"empty matches all", "", []string{"Tatooine", "Alderaan", "Dagobah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FilterPlanets(viewFixture(), "", tt.search))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q matched %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestFilterPlanetsCombined(t *testing.T) {
	// Both filters must match.
	got := FilterPlanets(viewFixture(), "desert", "leia")
	if len(got) != 0 {
		t.Errorf("combined filter matched %v, want none", names(got))
	}
}

func TestFilterPlanetsIdempotent(t *testing.T) {
	planets := viewFixture()

	first := FilterPlanets(planets, "a", "l")
	second := FilterPlanets(planets, "a", "l")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated projection differs: %v vs %v", names(first), names(second))
	}
	if !reflect.DeepEqual(planets, viewFixture()) {
		t.Error("FilterPlanets mutated its input")
	}
}

func names(planets []models.Planet) []string {
	out := []string{}
	for _, p := range planets {
		out = append(out, p.Name)
	}
	return out
}
