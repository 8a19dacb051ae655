//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type fixtureMovie struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// fakeCatalog serves OMDb-style search responses from a fixed table
type fakeCatalog struct {
	*httptest.Server

	mu      sync.Mutex
	queries []string
	movies  map[string][]fixtureMovie // lower-cased query -> results
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	fc := &fakeCatalog{
		movies: map[string][]fixtureMovie{
			"titanic": {
				{Title: "Titanic", Year: "1997", ImdbID: "tt0120338", Type: "movie", Poster: "N/A"},
				{Title: "A Night to Remember", Year: "1958", ImdbID: "tt0051994", Type: "movie", Poster: "N/A"},
				{Title: "Titanic II", Year: "2010", ImdbID: "tt1640571", Type: "movie", Poster: "N/A"},
			},
		},
	}
	fc.Server = httptest.NewServer(http.HandlerFunc(fc.serve))
	t.Cleanup(fc.Close)
	return fc
}

func (fc *fakeCatalog) serve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("s")

	fc.mu.Lock()
	fc.queries = append(fc.queries, query)
	results, ok := fc.movies[strings.ToLower(query)]
	fc.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]string{"Response": "False", "Error": "Movie not found!"})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"Search":   results,
		"Response": "True",
	})
}

// Queries returns the search terms received so far
func (fc *fakeCatalog) Queries() []string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]string(nil), fc.queries...)
}
