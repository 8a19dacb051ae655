package ui

import (
	"moviegrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
