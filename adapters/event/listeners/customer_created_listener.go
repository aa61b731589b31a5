package listeners

import (
	"github.com/SeaCloudHub/eventdispatcher/domain"
	"github.com/SeaCloudHub/eventdispatcher/domain/customer"
	"go.uber.org/zap"
)

type LogWhenCustomerCreated1 struct {
	logger *zap.SugaredLogger
}

func NewLogWhenCustomerCreated1(logger *zap.SugaredLogger) *LogWhenCustomerCreated1 {
	return &LogWhenCustomerCreated1{logger: logger}
}

func (l *LogWhenCustomerCreated1) Handle(event domain.BaseDomainEvent) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	l.logger.Infow("This is the first console.log of the event: CustomerCreated",
		zap.Time("occurred_at", event.OccurredAt()),
	)

	return nil
}

type LogWhenCustomerCreated2 struct {
	logger *zap.SugaredLogger
}

func NewLogWhenCustomerCreated2(logger *zap.SugaredLogger) *LogWhenCustomerCreated2 {
	return &LogWhenCustomerCreated2{logger: logger}
}

func (l *LogWhenCustomerCreated2) Handle(event domain.BaseDomainEvent) error {
	if _, ok := event.(customer.CustomerCreatedEvent); !ok {
		return nil
	}

	l.logger.Infow("This is the second console.log of the event: CustomerCreated",
		zap.Time("occurred_at", event.OccurredAt()),
	)

	return nil
}
