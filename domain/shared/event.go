package shared

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// DomainEvent is an immutable record of a state change inside an aggregate.
// The event name is a routing key only; handlers that need the payload
// assert the concrete event type.
type DomainEvent interface {
	EventName() string
	OccurredOn() time.Time
	AggregateID() string
}

// EventHandler reacts to one kind of event with a side effect. Handlers
// must not mutate the aggregate that raised the event.
type EventHandler interface {
	Handle(event DomainEvent) error
	Name() string
}

// EventDispatcher maps event names to the ordered set of handlers
// subscribed to them. It is constructed once at process start and passed
// by reference to everything that publishes or subscribes; there is no
// package-level registry.
type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register adds handler to the end of the handler list for eventName.
// Registering the same handler twice is allowed and results in one
// invocation per registration.
func (d *EventDispatcher) Register(eventName string, handler EventHandler) error {
	if eventName == "" {
		return errors.New("event name cannot be empty")
	}
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers[eventName] = append(d.handlers[eventName], handler)
	return nil
}

// Unregister removes the first registration under eventName whose Name()
// matches the given handler. No-op when the handler was never registered.
func (d *EventDispatcher) Unregister(eventName string, handler EventHandler) {
	if handler == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	handlers, exists := d.handlers[eventName]
	if !exists {
		return
	}

	for i, h := range handlers {
		if h.Name() == handler.Name() {
			d.handlers[eventName] = append(handlers[:i], handlers[i+1:]...)
			return
		}
	}
}

// UnregisterAll clears the whole registry. Intended for test teardown.
func (d *EventDispatcher) UnregisterAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.handlers = make(map[string][]EventHandler)
}

// Notify invokes every handler registered under the event's name,
// synchronously and in registration order. A failing handler never
// prevents the remaining handlers from running; all handler errors are
// collected and returned joined. An event with no handlers is not an
// error.
func (d *EventDispatcher) Notify(event DomainEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	d.mu.RLock()
	registered := d.handlers[event.EventName()]
	handlers := make([]EventHandler, len(registered))
	copy(handlers, registered)
	d.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			errs = append(errs, fmt.Errorf("handler %s: %w", handler.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// HandlerCount reports how many registrations exist for eventName.
func (d *EventDispatcher) HandlerCount(eventName string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.handlers[eventName])
}

func validateEvent(event DomainEvent) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if event.EventName() == "" {
		return errors.New("event name cannot be empty")
	}
	if event.OccurredOn().IsZero() {
		return errors.New("occurred on time cannot be zero")
	}
	return nil
}
