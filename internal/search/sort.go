package search

import (
	"sort"

	"moviegrip/internal/domain"
)

// SortByTitle returns a copy of movies ordered by title, ascending.
// Comparison is byte-wise and case-sensitive; equal titles keep catalog order.
func SortByTitle(movies []domain.Movie) []domain.Movie {
	sorted := make([]domain.Movie, len(movies))
	copy(sorted, movies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

// ApplySortPolicy returns movies in the order the renderer should show them
func ApplySortPolicy(movies []domain.Movie, sorted bool) []domain.Movie {
	if sorted {
		return SortByTitle(movies)
	}
	out := make([]domain.Movie, len(movies))
	copy(out, movies)
	return out
}
