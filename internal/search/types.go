package search

import "moviegrip/internal/domain"

// State holds the coordinator state. It is only mutated on the event loop.
type State struct {
	Query      string
	Sorted     bool
	Status     domain.FetchStatus
	Results    []domain.Movie // last successful payload, catalog order
	Err        error          // set when Status is FetchFailed
	Generation uint64         // generation of the most recently issued fetch
	RequestID  string
	InFlight   string // query of the most recently issued fetch
}

// Snapshot is the read-only view handed to the renderer
type Snapshot struct {
	Query      string
	Movies     []domain.Movie
	Loading    bool
	Error      string // validation message, "" when none
	FetchError string
	Status     domain.FetchStatus
	Sorted     bool
	Validation ValidationState
	Pending    bool // a debounced fetch is armed
}

// DebounceElapsedMsg is posted when the debounce timer fires
type DebounceElapsedMsg struct {
	Seq   uint64
	Query string
}

// FetchResolvedMsg is posted when a catalog request completes
type FetchResolvedMsg struct {
	Generation uint64
	RequestID  string
	Query      string
	Movies     []domain.Movie
	Err        error
}
