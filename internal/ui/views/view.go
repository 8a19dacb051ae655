package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"moviegrip/internal/domain"
)

// Placeholder lines for the result area
const (
	LoadingText  = "Loading..."
	NoMoviesText = "No movies found"
	IdleText     = "Type a movie title to search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	InputView       string
	InputFocused    bool
	Sorted          bool
	ValidationError string
	Loading         bool
	Pending         bool
	FetchError      string
	Status          domain.FetchStatus
	Movies          []domain.Movie
	SelectedIndex   int
	ShowSelection   bool
	ViewportOffset  int
	ViewportHeight  int
	StatusMessage   string
	LastSearch      string
	HelpView        string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	movieRender *MovieRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showYear bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		movieRender: NewMovieRenderer(styles, showYear),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}

	content.WriteString(r.renderTitle(state, termWidth))
	content.WriteString("\n")

	inputStyle := r.styles.Input
	switch {
	case state.ValidationError != "":
		inputStyle = r.styles.InputInvalid
	case state.InputFocused:
		inputStyle = r.styles.InputFocused
	}
	boxWidth := termWidth - 8 // container padding plus border
	if boxWidth < 20 {
		boxWidth = 20
	}
	content.WriteString(inputStyle.Width(boxWidth).Render(state.InputView))
	content.WriteString("\n")

	content.WriteString(r.styles.Checkbox.Render(Checkbox(state.Sorted) + " sort by title"))
	content.WriteString("\n")

	if state.ValidationError != "" {
		content.WriteString(r.styles.StatusError.Render(state.ValidationError))
	}
	content.WriteString("\n\n")

	content.WriteString(r.renderResults(state))

	if state.StatusMessage != "" {
		content.WriteString("\n\n")
		content.WriteString(r.styles.StatusWarning.Render(state.StatusMessage))
	}

	helpText := r.styles.Help.Render(state.HelpView)

	// Pad so the help bar sits at the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// Checkbox renders the sort flag as "[x]" or "[ ]"
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func (r *Renderer) renderTitle(state ViewState, termWidth int) string {
	logo := r.styles.Title.Render("moviegrip")

	indicators := []string{}
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, spinner[frame]+" Searching")
	} else if state.Pending {
		indicators = append(indicators, "…")
	}
	if state.LastSearch != "" {
		indicators = append(indicators, "last: "+state.LastSearch)
	}
	if len(indicators) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(indicators, " | "))
	paddingWidth := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return logo + "  " + rightContent
}

func (r *Renderer) renderResults(state ViewState) string {
	switch {
	case state.Loading:
		return r.styles.StatusLoading.Render(LoadingText)
	case state.Status == domain.FetchFailed:
		return r.styles.StatusError.Render(fmt.Sprintf("Search failed: %s", state.FetchError))
	case state.Status == domain.FetchSucceeded && len(state.Movies) == 0:
		return r.styles.Dim.Render(NoMoviesText)
	case state.Status == domain.FetchIdle:
		return r.styles.Dim.Render(IdleText)
	}
	return r.renderMovieList(state)
}

// renderMovieList renders the visible slice of results with scroll indicators
func (r *Renderer) renderMovieList(state ViewState) string {
	total := len(state.Movies)
	height := state.ViewportHeight
	if height <= 0 {
		height = total
	}

	offset := state.ViewportOffset
	if offset < 0 || offset >= total {
		offset = 0
	}

	needsTopIndicator := offset > 0
	needsBottomIndicator := offset+height < total
	effectiveHeight := height
	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	var lines []string
	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", offset)))
	}

	end := offset + effectiveHeight
	if end > total {
		end = total
	}
	for i := offset; i < end; i++ {
		selected := state.ShowSelection && i == state.SelectedIndex
		lines = append(lines, r.movieRender.RenderMovie(state.Movies[i], selected, state.Width))
	}

	if needsBottomIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", total-end)))
	}

	return strings.Join(lines, "\n")
}
