package ui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps shows long text in ov while the program releases the terminal
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal is released while paging
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager shows content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the page back on exit; it would garble our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds j/k scrolling on top of ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	binds := oviewer.GetKeyBinds(*config)
	for action, k := range map[string]string{"down": "j", "up": "k"} {
		if !slices.Contains(binds[action], k) {
			binds[action] = append(binds[action], k)
		}
	}
	config.Keybind = binds
}
