package event_test

import (
	"time"

	"github.com/SeaCloudHub/eventdispatcher/domain"
)

type namedEvent string

var _ domain.BaseDomainEvent = namedEvent("")

func (e namedEvent) EventName() string {
	return string(e)
}

func (e namedEvent) EventData() any {
	return nil
}

func (e namedEvent) OccurredAt() time.Time {
	return time.Time{}
}
