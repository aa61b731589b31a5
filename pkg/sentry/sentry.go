package sentry

import (
	"time"

	"github.com/SeaCloudHub/eventdispatcher/domain"
	sentrygo "github.com/getsentry/sentry-go"
)

const FlushTime = 2 * time.Second

// HandlerFailureReporter returns a callback that sends event handler failures
// to the given hub, tagged with the event name.
func HandlerFailureReporter(hub *sentrygo.Hub) func(event domain.BaseDomainEvent, err error) {
	return func(event domain.BaseDomainEvent, err error) {
		hub.WithScope(func(scope *sentrygo.Scope) {
			scope.SetTag("event", event.EventName())
			scope.SetContext("event", sentrygo.Context{
				"occurred_at": event.OccurredAt(),
			})
			hub.CaptureException(err)
		})
	}
}
