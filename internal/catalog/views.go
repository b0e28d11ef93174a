package catalog

import (
	"sort"
	"strings"

	"planetarium/internal/models"
)

// UniqueTerrains returns every terrain label in the collection,
// deduplicated and sorted ascending. Pure: no side effects, no network
// access, same input always yields the same output.
func UniqueTerrains(planets []models.Planet) []string {
	seen := make(map[string]struct{})
	terrains := []string{}
	for _, p := range planets {
		for _, label := range p.Terrains {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			terrains = append(terrains, label)
		}
	}
	sort.Strings(terrains)
	return terrains
}

// FilterPlanets returns the subset of the collection matching both filters.
// A planet is included iff its terrain field case-insensitively contains
// the terrain filter (empty matches all) and its name or any resolved
// resident name case-insensitively contains the search term (empty matches
// all). Pure; the input slice is never mutated.
func FilterPlanets(planets []models.Planet, terrain, search string) []models.Planet {
	terrain = strings.ToLower(strings.TrimSpace(terrain))
	search = strings.ToLower(strings.TrimSpace(search))

	matched := []models.Planet{}
	for _, p := range planets {
		if terrain != "" && !strings.Contains(strings.ToLower(strings.Join(p.Terrains, ", ")), terrain) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// matchesSearch reports whether the planet's name or any resident display
// name contains the lowercased search term.
func matchesSearch(p models.Planet, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	for _, name := range p.Residents {
		if strings.Contains(strings.ToLower(name), term) {
			return true
		}
	}
	return false
}
