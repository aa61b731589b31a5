package event

import (
	"fmt"
	"sync"

	"github.com/SeaCloudHub/eventdispatcher/domain"
	"go.uber.org/zap"
)

type Options func(ed *eventDispatcher)

func WithLogger(logger *zap.SugaredLogger) Options {
	return func(ed *eventDispatcher) {
		ed.logger = logger
	}
}

// WithFailureReporter sets a callback that receives every error returned by
// Notify together with the event being delivered.
func WithFailureReporter(report func(event domain.BaseDomainEvent, err error)) Options {
	return func(ed *eventDispatcher) {
		ed.report = report
	}
}

var _ domain.EventDispatcher = (*eventDispatcher)(nil)

type eventDispatcher struct {
	handlers map[string][]domain.EventHandler
	mutex    sync.RWMutex

	logger *zap.SugaredLogger
	report func(event domain.BaseDomainEvent, err error)
}

func NewEventDispatcher(options ...Options) *eventDispatcher {
	ed := &eventDispatcher{
		handlers: make(map[string][]domain.EventHandler),
		logger:   zap.NewNop().Sugar(),
	}

	for _, fn := range options {
		fn(ed)
	}

	return ed
}

func (ed *eventDispatcher) Register(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
	ed.logger.Debugw("event handler registered",
		zap.String("event", eventName),
		zap.Int("handlers", len(ed.handlers[eventName])),
	)
}

// Unregister removes the first registration of handler under eventName. The
// event name stays registered even when its last handler is removed.
func (ed *eventDispatcher) Unregister(eventName string, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers, ok := ed.handlers[eventName]
	if !ok {
		return
	}

	for i, h := range handlers {
		if h != handler {
			continue
		}

		remaining := make([]domain.EventHandler, 0, len(handlers)-1)
		remaining = append(remaining, handlers[:i]...)
		remaining = append(remaining, handlers[i+1:]...)
		ed.handlers[eventName] = remaining

		ed.logger.Debugw("event handler unregistered",
			zap.String("event", eventName),
			zap.Int("handlers", len(remaining)),
		)

		return
	}
}

func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = make(map[string][]domain.EventHandler)
}

// Notify calls every handler registered for the event, in registration order,
// on the caller's goroutine. It stops at the first failing handler. Panics are
// not recovered and skip both the failure log and the failure reporter.
func (ed *eventDispatcher) Notify(event domain.BaseDomainEvent) error {
	eventName := event.EventName()

	// handlers run without the lock held so they can use the dispatcher
	ed.mutex.RLock()
	handlers := append([]domain.EventHandler(nil), ed.handlers[eventName]...)
	ed.mutex.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	ed.logger.Debugw("notifying event handlers",
		zap.String("event", eventName),
		zap.Int("handlers", len(handlers)),
	)

	for i, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			err = fmt.Errorf("%w: %s handler #%d: %w", domain.ErrHandlerFailed, eventName, i, err)
			ed.logger.Warnw("event handler failed",
				zap.String("event", eventName),
				zap.Int("position", i),
				zap.Int("skipped", len(handlers)-i-1),
				zap.Error(err),
			)
			if ed.report != nil {
				ed.report(event, err)
			}

			return err
		}
	}

	return nil
}

// EventHandlers returns a copy of the registry.
func (ed *eventDispatcher) EventHandlers() map[string][]domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	handlers := make(map[string][]domain.EventHandler, len(ed.handlers))
	for eventName, hs := range ed.handlers {
		handlers[eventName] = append(make([]domain.EventHandler, 0, len(hs)), hs...)
	}

	return handlers
}
