package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviegrip/internal/domain"
	"moviegrip/internal/ui/views"
)

// HelpRenderer builds the text shown in the pager
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

func (r *HelpRenderer) line(b *strings.Builder, keys, desc string) {
	b.WriteString(fmt.Sprintf("  %-12s %s\n", r.keyStyle.Render(keys), r.descStyle.Render(desc)))
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(debounceMS int) string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("moviegrip help"))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Search box"))
	help.WriteString("\n")
	r.line(&help, "typing", fmt.Sprintf("Search %dms after the last keystroke", debounceMS))
	r.line(&help, "Enter", "Search now")
	r.line(&help, "Tab", "Toggle sort by title")
	r.line(&help, "Esc, ↓", "Go to the result list")
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Result list"))
	help.WriteString("\n")
	r.line(&help, "↑/↓, j/k", "Move up/down")
	r.line(&help, "PgUp/PgDn", "Page up/down")
	r.line(&help, "g/G", "Go to top/bottom")
	r.line(&help, "/, i", "Edit the query")
	r.line(&help, "s, Tab", "Toggle sort by title")
	r.line(&help, "o", "Open the result list in the pager")
	r.line(&help, "Enter", "Search again")
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Queries"))
	help.WriteString("\n")
	help.WriteString(r.noteStyle.Render("  Titles must be at least 3 characters and not only digits."))
	help.WriteString("\n")
	help.WriteString(r.noteStyle.Render("  Enter searches anyway."))
	help.WriteString("\n")

	help.WriteString(r.sectionStyle.Render("Other"))
	help.WriteString("\n")
	r.line(&help, "?", "Show this help")
	r.line(&help, "q, Ctrl+C", "Quit")

	return help.String()
}

// RenderResultsContent renders the result list as pager text
func (r *HelpRenderer) RenderResultsContent(query string, movies []domain.Movie, sorted bool) string {
	var b strings.Builder

	order := "catalog order"
	if sorted {
		order = "sorted by title"
	}
	b.WriteString(r.titleStyle.Render(fmt.Sprintf("%d results for %q (%s)", len(movies), query, order)))
	b.WriteString("\n")

	for i, movie := range movies {
		b.WriteString(fmt.Sprintf("%4d  %s", i+1, views.Label(movie, true)))
		if movie.Type != "" {
			b.WriteString("  " + r.noteStyle.Render(movie.Type))
		}
		if movie.ID != "" {
			b.WriteString("  " + r.descStyle.Render(movie.ID))
		}
		b.WriteString("\n")
	}

	return b.String()
}
