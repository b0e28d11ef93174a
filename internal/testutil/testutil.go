// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"planetarium/internal/swapi"
)

// Catalog describes a fake remote catalog served over httptest. Resident
// entries in page results may be given as paths (e.g. "/api/people/1/");
// they are rewritten to absolute URLs pointing back at the fake server when
// a page is served.
type Catalog struct {
	Pages         [][]swapi.Planet  // page N is Pages[N-1]
	Residents     map[string]string // path -> display name
	FailPage      int               // 1-based page number answered with 500; 0 disables
	FailResidents map[string]bool   // resident paths answered with 500
	Gate          chan struct{}     // when non-nil, page requests block until it closes
}

// Serve starts an httptest server for the catalog and returns it together
// with the URL of the first page. The server is shut down via t.Cleanup.
func (f *Catalog) Serve(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/planets") {
			f.servePage(w, r)
			return
		}
		f.serveResident(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, srv.URL + "/api/planets/?page=1"
}

func (f *Catalog) servePage(w http.ResponseWriter, r *http.Request) {
	if f.Gate != nil {
		<-f.Gate
	}

	page := 1
	if q := r.URL.Query().Get("page"); q != "" {
		if n, err := strconv.Atoi(q); err == nil {
			page = n
		}
	}

	if f.FailPage != 0 && page == f.FailPage {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if page < 1 || page > len(f.Pages) {
		http.NotFound(w, r)
		return
	}

	base := "http://" + r.Host
	results := make([]swapi.Planet, len(f.Pages[page-1]))
	copy(results, f.Pages[page-1])
	for i := range results {
		urls := make([]string, len(results[i].Residents))
		for j, ref := range results[i].Residents {
			if strings.HasPrefix(ref, "http") {
				urls[j] = ref
			} else {
				urls[j] = base + ref
			}
		}
		results[i].Residents = urls
	}

	resp := swapi.Page{Results: results}
	if page < len(f.Pages) {
		next := fmt.Sprintf("%s/api/planets/?page=%d", base, page+1)
		resp.Next = &next
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (f *Catalog) serveResident(w http.ResponseWriter, r *http.Request) {
	name, ok := f.Residents[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if f.FailResidents[r.URL.Path] {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"name": name})
}

// NewPlanet builds a raw wire planet for fixtures.
func NewPlanet(name, population, terrain string, residents ...string) swapi.Planet {
	return swapi.Planet{
		Name:       name,
		Climate:    "temperate",
		Terrain:    terrain,
		Population: population,
		Diameter:   "10465",
		Edited:     "2014-12-20T20:58:18.411000Z",
		Films:      []string{"https://swapi.dev/api/films/1/"},
		Residents:  residents,
	}
}
