package domain

import (
	"database/sql/driver"
	"slices"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "UNPAID"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

var paymentStatuses = []PaymentStatus{
	PaymentStatusUnpaid,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

func PaymentStatusValues() []PaymentStatus {
	return slices.Clone(paymentStatuses)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	return parseMember[PaymentStatus]("PaymentStatus", s)
}

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

func (p PaymentStatus) MarshalText() ([]byte, error) {
	return marshalMember("PaymentStatus", p)
}

func (p *PaymentStatus) UnmarshalText(text []byte) error {
	v, err := ParsePaymentStatus(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p PaymentStatus) Value() (driver.Value, error) {
	return valueMember("PaymentStatus", p)
}

func (p *PaymentStatus) Scan(src any) error {
	v, err := scanMember[PaymentStatus]("PaymentStatus", src)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
