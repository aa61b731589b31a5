package sentry_test

import (
	"errors"
	"testing"

	"github.com/SeaCloudHub/eventdispatcher/domain/customer"
	"github.com/SeaCloudHub/eventdispatcher/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFailureReporter(t *testing.T) {
	t.Run("it should capture the error tagged with the event name", func(t *testing.T) {
		var captured []*sentrygo.Event
		client, err := sentrygo.NewClient(sentrygo.ClientOptions{
			BeforeSend: func(event *sentrygo.Event, _ *sentrygo.EventHint) *sentrygo.Event {
				captured = append(captured, event)

				return nil
			},
		})
		require.NoError(t, err)
		hub := sentrygo.NewHub(client, sentrygo.NewScope())

		report := sentry.HandlerFailureReporter(hub)
		report(customer.NewCustomerCreatedEvent(nil), errors.New("boom"))

		require.Len(t, captured, 1)
		assert.Equal(t, customer.CustomerCreatedEventName, captured[0].Tags["event"])
		require.NotEmpty(t, captured[0].Exception)
		assert.Equal(t, "boom", captured[0].Exception[0].Value)
	})
}
