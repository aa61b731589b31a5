package main

import (
	"log"

	"github.com/SeaCloudHub/eventdispatcher/adapters/event"
	"github.com/SeaCloudHub/eventdispatcher/adapters/event/listeners"
	"github.com/SeaCloudHub/eventdispatcher/domain/customer"
	"github.com/SeaCloudHub/eventdispatcher/pkg/config"
	"github.com/SeaCloudHub/eventdispatcher/pkg/logger"
	"github.com/SeaCloudHub/eventdispatcher/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	applog, err = logger.NewAppLogger(logger.WithLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("cannot create logger: %v\n", err)
	}
	defer logger.Sync(applog)

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	// event bus
	dispatcher := event.NewEventDispatcher(
		event.WithLogger(applog),
		event.WithFailureReporter(sentry.HandlerFailureReporter(sentrygo.CurrentHub())),
	)

	dispatcher.Register(customer.CustomerCreatedEventName, listeners.NewLogWhenCustomerCreated1(applog))
	dispatcher.Register(customer.CustomerCreatedEventName, listeners.NewLogWhenCustomerCreated2(applog))
	dispatcher.Register(customer.CustomerAddressChangedEventName, listeners.NewLogWhenCustomerAddressChanged(applog))

	c := customer.NewCustomer(uuid.NewString(), "Customer 1")
	if err := dispatcher.Notify(customer.NewCustomerCreatedEvent(*c)); err != nil {
		applog.Errorf("cannot notify customer created: %v", err)
	}

	addressChanged := c.ChangeAddress(customer.Address{
		Street: "street",
		Number: 30,
		Zip:    "62823-000",
		City:   "city",
	})
	if err := dispatcher.Notify(addressChanged); err != nil {
		applog.Errorf("cannot notify customer address changed: %v", err)
	}

	applog.Info("customer events dispatched!")
}
