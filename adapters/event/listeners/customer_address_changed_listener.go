package listeners

import (
	"github.com/SeaCloudHub/eventdispatcher/domain"
	"github.com/SeaCloudHub/eventdispatcher/domain/customer"
	"go.uber.org/zap"
)

type LogWhenCustomerAddressChanged struct {
	logger *zap.SugaredLogger
}

func NewLogWhenCustomerAddressChanged(logger *zap.SugaredLogger) *LogWhenCustomerAddressChanged {
	return &LogWhenCustomerAddressChanged{logger: logger}
}

func (l *LogWhenCustomerAddressChanged) Handle(event domain.BaseDomainEvent) error {
	addressChangedEvent, ok := event.(customer.CustomerAddressChangedEvent)
	if !ok {
		return nil
	}

	c := addressChangedEvent.Customer()
	l.logger.Infow("customer address changed",
		zap.String("customer_id", c.ID),
		zap.String("customer_name", c.Name),
		zap.Any("address", c.Address),
	)

	return nil
}
