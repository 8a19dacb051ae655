package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchScheduled      EventType = "SearchScheduled"
	EventFetchStarted         EventType = "FetchStarted"
	EventFetchSucceeded       EventType = "FetchSucceeded"
	EventFetchFailed          EventType = "FetchFailed"
	EventStaleResultDiscarded EventType = "StaleResultDiscarded"
	EventSortToggled          EventType = "SortToggled"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchScheduledEvent is emitted when a debounced fetch is armed
type SearchScheduledEvent struct {
	Query string
}

func (e SearchScheduledEvent) Type() EventType { return EventSearchScheduled }

// FetchStartedEvent is emitted when a catalog request is dispatched
type FetchStartedEvent struct {
	RequestID  string
	Generation uint64
	Query      string
	Immediate  bool // true when triggered by submit rather than the debounce timer
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// FetchSucceededEvent is emitted when the current fetch resolves with results
type FetchSucceededEvent struct {
	RequestID string
	Query     string
	Results   int
}

func (e FetchSucceededEvent) Type() EventType { return EventFetchSucceeded }

// FetchFailedEvent is emitted when the current fetch resolves with an error
type FetchFailedEvent struct {
	RequestID string
	Query     string
	Err       error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// StaleResultDiscardedEvent is emitted when a fetch resolves after a newer one was issued
type StaleResultDiscardedEvent struct {
	RequestID  string
	Query      string
	Generation uint64
	Current    uint64
}

func (e StaleResultDiscardedEvent) Type() EventType { return EventStaleResultDiscarded }

// SortToggledEvent is emitted when the sort flag flips
type SortToggledEvent struct {
	Sorted bool
}

func (e SortToggledEvent) Type() EventType { return EventSortToggled }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
