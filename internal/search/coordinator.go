package search

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"moviegrip/internal/domain"
	"moviegrip/internal/eventbus"
)

// Catalog is the remote movie lookup the coordinator dispatches to
type Catalog interface {
	Search(ctx context.Context, query string, sort bool) ([]domain.Movie, error)
}

// Notifier delivers a message back to the event loop. It is called from
// timer and fetch goroutines and may block until the loop accepts it.
type Notifier func(msg any)

// Options configures a Coordinator
type Options struct {
	Debounce           time.Duration
	Clock              clock.Clock
	SortByDefault      bool
	SkipInvalidQueries bool // skip invalid queries on the debounced path only
	Bus                eventbus.EventBus
	Logger             *zap.Logger
}

// Coordinator owns the query, the sort flag and the fetch lifecycle
type Coordinator struct {
	ctx         context.Context
	catalog     Catalog
	notify      Notifier
	bus         eventbus.EventBus
	logger      *zap.Logger
	validator   *Validator
	debouncer   *Debouncer
	skipInvalid bool
	state       *State
}

// NewCoordinator creates a coordinator. ctx bounds every catalog request.
func NewCoordinator(ctx context.Context, catalog Catalog, notify Notifier, opts Options) *Coordinator {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		ctx:         ctx,
		catalog:     catalog,
		notify:      notify,
		bus:         opts.Bus,
		logger:      logger.Named("search"),
		validator:   NewValidator(),
		debouncer:   NewDebouncer(opts.Clock, opts.Debounce),
		skipInvalid: opts.SkipInvalidQueries,
		state: &State{
			Sorted: opts.SortByDefault,
			Status: domain.FetchIdle,
		},
	}
}

// UpdateQuery sets the query, revalidates it and reschedules the debounced fetch
func (c *Coordinator) UpdateQuery(text string) {
	c.state.Query = text
	c.validator.Update(text)

	c.debouncer.Schedule(func(seq uint64) {
		c.notify(DebounceElapsedMsg{Seq: seq, Query: text})
	})
	c.publish(eventbus.SearchScheduledEvent{Query: text})
}

// Submit cancels any pending debounced fetch and fetches the current query now
func (c *Coordinator) Submit() {
	if c.debouncer.Cancel() {
		c.logger.Debug("pending search cancelled by submit")
	}
	c.fetch(c.state.Query, true)
}

// ToggleSort flips the sort flag without fetching
func (c *Coordinator) ToggleSort() {
	c.state.Sorted = !c.state.Sorted
	c.publish(eventbus.SortToggledEvent{Sorted: c.state.Sorted})
}

// Handle applies a message posted by a timer or fetch goroutine.
// It reports whether visible state changed.
func (c *Coordinator) Handle(msg any) bool {
	switch msg := msg.(type) {
	case DebounceElapsedMsg:
		return c.handleDebounceElapsed(msg)
	case FetchResolvedMsg:
		return c.handleFetchResolved(msg)
	}
	return false
}

func (c *Coordinator) handleDebounceElapsed(msg DebounceElapsedMsg) bool {
	if !c.debouncer.Claim(msg.Seq) {
		c.logger.Debug("ignoring superseded debounce", zap.Uint64("seq", msg.Seq), zap.String("query", msg.Query))
		return false
	}
	if c.skipInvalid && checkQuery(msg.Query) != nil {
		c.logger.Debug("skipping invalid query", zap.String("query", msg.Query))
		return false
	}
	c.fetch(msg.Query, false)
	return true
}

func (c *Coordinator) handleFetchResolved(msg FetchResolvedMsg) bool {
	if msg.Generation != c.state.Generation {
		c.logger.Info("discarding stale result",
			zap.String("request_id", msg.RequestID),
			zap.String("query", msg.Query),
			zap.Uint64("generation", msg.Generation),
			zap.Uint64("current", c.state.Generation))
		c.publish(eventbus.StaleResultDiscardedEvent{
			RequestID:  msg.RequestID,
			Query:      msg.Query,
			Generation: msg.Generation,
			Current:    c.state.Generation,
		})
		return false
	}

	if msg.Err != nil {
		c.state.Status = domain.FetchFailed
		c.state.Err = msg.Err
		c.state.Results = nil
		c.logger.Warn("search failed",
			zap.String("request_id", msg.RequestID),
			zap.String("query", msg.Query),
			zap.Error(msg.Err))
		c.publish(eventbus.FetchFailedEvent{RequestID: msg.RequestID, Query: msg.Query, Err: msg.Err})
		return true
	}

	c.state.Status = domain.FetchSucceeded
	c.state.Err = nil
	c.state.Results = msg.Movies
	c.logger.Info("search completed",
		zap.String("request_id", msg.RequestID),
		zap.String("query", msg.Query),
		zap.Int("results", len(msg.Movies)))
	c.publish(eventbus.FetchSucceededEvent{RequestID: msg.RequestID, Query: msg.Query, Results: len(msg.Movies)})
	return true
}

// fetch moves to Loading and dispatches the catalog request off the loop.
// In-flight requests are never cancelled; older completions are discarded
// by generation in handleFetchResolved.
func (c *Coordinator) fetch(query string, immediate bool) {
	c.state.Generation++
	c.state.RequestID = uuid.NewString()
	c.state.InFlight = query
	c.state.Status = domain.FetchLoading
	c.state.Results = nil
	c.state.Err = nil

	generation := c.state.Generation
	requestID := c.state.RequestID
	sorted := c.state.Sorted

	c.logger.Debug("search started",
		zap.String("request_id", requestID),
		zap.String("query", query),
		zap.Bool("immediate", immediate))
	c.publish(eventbus.FetchStartedEvent{
		RequestID:  requestID,
		Generation: generation,
		Query:      query,
		Immediate:  immediate,
	})

	go func() {
		movies, err := c.catalog.Search(c.ctx, query, sorted)
		c.notify(FetchResolvedMsg{
			Generation: generation,
			RequestID:  requestID,
			Query:      query,
			Movies:     movies,
			Err:        err,
		})
	}()
}

func (c *Coordinator) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

// Query returns the current query text
func (c *Coordinator) Query() string {
	return c.state.Query
}

// Sorted returns the current sort flag
func (c *Coordinator) Sorted() bool {
	return c.state.Sorted
}

// Status returns the fetch lifecycle state
func (c *Coordinator) Status() domain.FetchStatus {
	return c.state.Status
}

// Loading reports whether the current fetch is unresolved
func (c *Coordinator) Loading() bool {
	return c.state.Status == domain.FetchLoading
}

// Validation returns the validation state of the current query
func (c *Coordinator) Validation() ValidationState {
	return c.validator.State()
}

// FetchError returns the error of the current fetch, if it failed
func (c *Coordinator) FetchError() error {
	return c.state.Err
}

// Movies returns the current results ordered by the sort policy.
// The slice is empty unless the current fetch succeeded.
func (c *Coordinator) Movies() []domain.Movie {
	if c.state.Status != domain.FetchSucceeded {
		return nil
	}
	return ApplySortPolicy(c.state.Results, c.state.Sorted)
}

// Snapshot returns everything the renderer needs
func (c *Coordinator) Snapshot() Snapshot {
	snap := Snapshot{
		Query:      c.state.Query,
		Movies:     c.Movies(),
		Loading:    c.Loading(),
		Status:     c.state.Status,
		Sorted:     c.state.Sorted,
		Validation: c.validator.State(),
		Pending:    c.debouncer.Pending(),
	}
	snap.Error = snap.Validation.Message()
	if c.state.Err != nil {
		snap.FetchError = c.state.Err.Error()
	}
	return snap
}
