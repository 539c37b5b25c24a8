package domain

import (
	"database/sql/driver"
	"slices"
)

// OrderStatus is the lifecycle stage of a customer order. The order of
// declaration reads like a workflow but no transitions are enforced here;
// services that own order handling decide which moves are legal.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipping   OrderStatus = "SHIPPING"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusDraft      OrderStatus = "DRAFT"
)

var orderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipping,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusDraft,
}

// OrderStatusValues returns the members of OrderStatus in declaration order.
func OrderStatusValues() []OrderStatus {
	return slices.Clone(orderStatuses)
}

// ParseOrderStatus returns the member named s. Matching is exact and case-sensitive.
func ParseOrderStatus(s string) (OrderStatus, error) {
	return parseMember[OrderStatus]("OrderStatus", s)
}

func (o OrderStatus) String() string {
	return string(o)
}

func (o OrderStatus) IsValid() bool {
	switch o {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipping, OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled, OrderStatusDraft:
		return true
	}
	return false
}

func (o OrderStatus) MarshalText() ([]byte, error) {
	return marshalMember("OrderStatus", o)
}

func (o *OrderStatus) UnmarshalText(text []byte) error {
	v, err := ParseOrderStatus(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o OrderStatus) Value() (driver.Value, error) {
	return valueMember("OrderStatus", o)
}

func (o *OrderStatus) Scan(src any) error {
	v, err := scanMember[OrderStatus]("OrderStatus", src)
	if err != nil {
		return err
	}
	*o = v
	return nil
}
