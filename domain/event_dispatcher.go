package domain

import (
	"errors"
	"time"
)

var ErrHandlerFailed = errors.New("event handler failed")

// BaseDomainEvent is something that happened in the domain. The event name is
// fixed by the concrete type and is used as the registry key.
type BaseDomainEvent interface {
	EventName() string
	EventData() any
	OccurredAt() time.Time
}

type EventHandler interface {
	Handle(event BaseDomainEvent) error
}

// EventDispatcher routes events to the handlers registered for their name,
// synchronously and in registration order.
//
// Handlers are matched by identity, so register them as pointers.
type EventDispatcher interface {
	Register(eventName string, handler EventHandler)
	Unregister(eventName string, handler EventHandler)
	UnregisterAll()
	Notify(event BaseDomainEvent) error
	EventHandlers() map[string][]EventHandler
}
