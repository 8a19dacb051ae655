package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"moviegrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchScheduled      = domain.EventSearchScheduled
	EventFetchStarted         = domain.EventFetchStarted
	EventFetchSucceeded       = domain.EventFetchSucceeded
	EventFetchFailed          = domain.EventFetchFailed
	EventStaleResultDiscarded = domain.EventStaleResultDiscarded
	EventSortToggled          = domain.EventSortToggled
	EventError                = domain.EventError
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
)

// Re-export domain event types
type SearchScheduledEvent = domain.SearchScheduledEvent
type FetchStartedEvent = domain.FetchStartedEvent
type FetchSucceededEvent = domain.FetchSucceededEvent
type FetchFailedEvent = domain.FetchFailedEvent
type StaleResultDiscardedEvent = domain.StaleResultDiscardedEvent
type SortToggledEvent = domain.SortToggledEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and discards undelivered events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without holding the lock
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				go func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							b.logger.Error("event handler panic",
								zap.String("type", string(eventType)),
								zap.Any("panic", r),
								zap.ByteString("stack", debug.Stack()))
						}
					}()
					h(event)
				}(s.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}
