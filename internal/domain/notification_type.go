package domain

import (
	"database/sql/driver"
	"slices"
)

// NotificationType categorises a system notification.
type NotificationType string

const (
	NotificationTypeOrderUpdate NotificationType = "ORDER_UPDATE"
	NotificationTypeNewAnswer   NotificationType = "NEW_ANSWER"
	NotificationTypePromotion   NotificationType = "PROMOTION"
	NotificationTypeNewOrder    NotificationType = "NEW_ORDER"
	NotificationTypeNewCustomer NotificationType = "NEW_CUSTOMER"
	NotificationTypeNewQA       NotificationType = "NEW_QA" // new product question
	NotificationTypeLowStock    NotificationType = "LOW_STOCK"
)

var notificationTypes = []NotificationType{
	NotificationTypeOrderUpdate,
	NotificationTypeNewAnswer,
	NotificationTypePromotion,
	NotificationTypeNewOrder,
	NotificationTypeNewCustomer,
	NotificationTypeNewQA,
	NotificationTypeLowStock,
}

// NotificationTypeValues returns the members of NotificationType in declaration order.
func NotificationTypeValues() []NotificationType {
	return slices.Clone(notificationTypes)
}

// ParseNotificationType returns the member named s. Matching is exact and case-sensitive.
func ParseNotificationType(s string) (NotificationType, error) {
	return parseMember[NotificationType]("NotificationType", s)
}

func (n NotificationType) String() string {
	return string(n)
}

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationTypeOrderUpdate, NotificationTypeNewAnswer, NotificationTypePromotion, NotificationTypeNewOrder, NotificationTypeNewCustomer, NotificationTypeNewQA, NotificationTypeLowStock:
		return true
	}
	return false
}

func (n NotificationType) MarshalText() ([]byte, error) {
	return marshalMember("NotificationType", n)
}

func (n *NotificationType) UnmarshalText(text []byte) error {
	v, err := ParseNotificationType(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n NotificationType) Value() (driver.Value, error) {
	return valueMember("NotificationType", n)
}

func (n *NotificationType) Scan(src any) error {
	v, err := scanMember[NotificationType]("NotificationType", src)
	if err != nil {
		return err
	}
	*n = v
	return nil
}
