package listeners

import "github.com/SeaCloudHub/eventdispatcher/domain"

var (
	_ domain.EventHandler = (*LogWhenCustomerCreated1)(nil)
	_ domain.EventHandler = (*LogWhenCustomerCreated2)(nil)
	_ domain.EventHandler = (*LogWhenCustomerAddressChanged)(nil)
)
