package events

import (
	"fmt"
	"sync"

	"helpcenter/internal/shared/goroutine"
	"helpcenter/internal/shared/logger"
)

// InMemoryEventDispatcher fans events out to subscribers on a background
// goroutine. Delivery is at-most-once: a full buffer rejects the event.
type InMemoryEventDispatcher struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	eventCh  chan DomainEvent
	wg       sync.WaitGroup
	inflight sync.WaitGroup
	logger   logger.Interface
}

func NewInMemoryEventDispatcher(bufferSize int, log logger.Interface) *InMemoryEventDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &InMemoryEventDispatcher{
		handlers: make(map[string][]EventHandler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
		logger:   log,
	}
}

func (d *InMemoryEventDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full, dropped %s", event.GetEventType())
	}
}

func (d *InMemoryEventDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.GetEventType(), err)
		}
	}
	return nil
}

func (d *InMemoryEventDispatcher) Subscribe(eventType string, handler EventHandler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	d.mu.Unlock()
	return nil
}

func (d *InMemoryEventDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher is already running")
	}
	d.running = true

	goroutine.SafeGoWG(&d.wg, d.logger, "event-dispatcher", d.processEvents)
	return nil
}

// Stop drains queued events and waits for running handlers.
func (d *InMemoryEventDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return fmt.Errorf("event dispatcher is not running")
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	d.inflight.Wait()
	return nil
}

func (d *InMemoryEventDispatcher) processEvents() {
	for {
		select {
		case <-d.stopCh:
			for {
				select {
				case event := <-d.eventCh:
					d.handleEvent(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.handleEvent(event)
		}
	}
}

func (d *InMemoryEventDispatcher) handleEvent(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.GetEventType()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		h := handler
		goroutine.SafeGoWG(&d.inflight, d.logger, "event-handler", func() {
			if err := h.Handle(event); err != nil {
				d.logger.Errorw("event handler failed",
					"event_type", event.GetEventType(),
					"aggregate_id", event.GetAggregateID(),
					"error", err,
				)
			}
		})
	}
}
