package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"moviegrip/internal/domain"
)

func baseState() ViewState {
	return ViewState{Width: 80, Height: 30, InputView: "Titanic", ViewportHeight: 10}
}

func TestRenderIdle(t *testing.T) {
	out := NewRenderer(true).Render(baseState())
	assert.Contains(t, out, "moviegrip")
	assert.Contains(t, out, "Titanic")
	assert.Contains(t, out, "[ ] sort by title")
	assert.Contains(t, out, IdleText)
}

func TestRenderSortedCheckbox(t *testing.T) {
	state := baseState()
	state.Sorted = true
	assert.Contains(t, NewRenderer(true).Render(state), "[x] sort by title")
}

func TestRenderValidationError(t *testing.T) {
	state := baseState()
	state.ValidationError = "query must be at least 3 characters"
	assert.Contains(t, NewRenderer(true).Render(state), "query must be at least 3 characters")
}

func TestRenderLoading(t *testing.T) {
	state := baseState()
	state.Loading = true
	state.Status = domain.FetchLoading
	out := NewRenderer(true).Render(state)
	assert.Contains(t, out, LoadingText)
	assert.Contains(t, out, "Searching")
}

func TestRenderFetchError(t *testing.T) {
	state := baseState()
	state.Status = domain.FetchFailed
	state.FetchError = "catalog unavailable"
	assert.Contains(t, NewRenderer(true).Render(state), "Search failed: catalog unavailable")
}

func TestRenderNoMovies(t *testing.T) {
	state := baseState()
	state.Status = domain.FetchSucceeded
	assert.Contains(t, NewRenderer(true).Render(state), NoMoviesText)
}

func TestRenderMovieList(t *testing.T) {
	state := baseState()
	state.Status = domain.FetchSucceeded
	state.Movies = []domain.Movie{
		{Title: "Titanic", Year: "1997", Type: "movie"},
		{Title: "Titanic", Year: "1996", Type: "series"},
	}
	state.ShowSelection = true
	state.SelectedIndex = 1

	out := NewRenderer(true).Render(state)
	assert.Contains(t, out, "Titanic (1997)")
	assert.Contains(t, out, "> Titanic (1996)")
	assert.Contains(t, out, "series")
}

func TestRenderHidesYear(t *testing.T) {
	state := baseState()
	state.Status = domain.FetchSucceeded
	state.Movies = []domain.Movie{{Title: "Heat", Year: "1995"}}
	out := NewRenderer(false).Render(state)
	assert.Contains(t, out, "Heat")
	assert.NotContains(t, out, "1995")
}

func TestRenderScrollIndicators(t *testing.T) {
	state := baseState()
	state.Status = domain.FetchSucceeded
	for _, title := range []string{"A1", "A2", "A3", "A4", "A5", "A6"} {
		state.Movies = append(state.Movies, domain.Movie{Title: title})
	}
	state.ViewportHeight = 3
	state.ViewportOffset = 2

	out := NewRenderer(true).Render(state)
	assert.Contains(t, out, "↑ 2 more above ↑")
	assert.Contains(t, out, "A3")
	assert.NotContains(t, out, "A4")
	assert.Contains(t, out, "↓ 3 more below ↓")
}

func TestRenderLastSearch(t *testing.T) {
	state := baseState()
	state.LastSearch = "Titanic (12)"
	assert.Contains(t, NewRenderer(true).Render(state), "last: Titanic (12)")
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Heat (1995)", Label(domain.Movie{Title: "Heat", Year: "1995"}, true))
	assert.Equal(t, "Heat", Label(domain.Movie{Title: "Heat", Year: "1995"}, false))
	assert.Equal(t, "Heat", Label(domain.Movie{Title: "Heat"}, true))
}
