package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviegrip/internal/domain"
)

// MovieRenderer renders single result lines
type MovieRenderer struct {
	styles   *Styles
	showYear bool
}

// NewMovieRenderer creates a new movie renderer
func NewMovieRenderer(styles *Styles, showYear bool) *MovieRenderer {
	return &MovieRenderer{
		styles:   styles,
		showYear: showYear,
	}
}

// Label returns the plain text for a movie, "Title (Year)"
func Label(movie domain.Movie, showYear bool) string {
	if !showYear || movie.Year == "" {
		return movie.Title
	}
	return fmt.Sprintf("%s (%s)", movie.Title, movie.Year)
}

// RenderMovie renders a result line. Selected lines get a cursor and background.
func (r *MovieRenderer) RenderMovie(movie domain.Movie, isSelected bool, width int) string {
	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	title := movie.Title
	if isSelected {
		title = r.styles.Highlight.Render(title)
	}
	line := cursor + title
	if r.showYear && movie.Year != "" {
		line += " " + r.styles.Year.Render("("+movie.Year+")")
	}

	if movie.Type != "" && movie.Type != "movie" {
		kind := lipgloss.NewStyle().Foreground(lipgloss.Color(TypeColor(movie.Type))).Render(movie.Type)
		line += "  " + kind
	}

	if isSelected {
		if pad := width - 4 - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return r.styles.SelectionBg.Render(line)
	}
	return line
}
