package domain

import (
	"context"
	"slices"
)

// Enumeration describes one closed value set for callers that only know it by
// name: the HTTP API, the CLI and the schema drift check.
type Enumeration struct {
	Name    string   `json:"name"`
	PGType  string   `json:"pg_type"`
	Members []string `json:"members"`

	parse func(string) (string, error)
}

// Parse validates token against the enumeration and returns its canonical form.
func (e Enumeration) Parse(token string) (string, error) {
	return e.parse(token)
}

func (e Enumeration) Contains(token string) bool {
	return slices.Contains(e.Members, token)
}

func describe[T member](name, pgType string, values []T) Enumeration {
	return Enumeration{
		Name:    name,
		PGType:  pgType,
		Members: memberNames(values),
		parse: func(s string) (string, error) {
			v, err := parseMember[T](name, s)
			return string(v), err
		},
	}
}

// Enumerations returns a descriptor for every enumeration, sorted by name.
func Enumerations() []Enumeration {
	return []Enumeration{
		describe("AdjustmentType", "adjustment_type", adjustmentTypes),
		describe("ContactStatus", "contact_status", contactStatuses),
		describe("NotificationType", "notification_type", notificationTypes),
		describe("OrderStatus", "order_status", orderStatuses),
		describe("PaymentStatus", "payment_status", paymentStatuses),
		describe("QuestionStatus", "question_status", questionStatuses),
		describe("StockMovementReason", "stock_movement_reason", stockMovementReasons),
	}
}

// Lookup finds an enumeration by its type name, e.g. "OrderStatus".
func Lookup(name string) (Enumeration, error) {
	for _, e := range Enumerations() {
		if e.Name == name {
			return e, nil
		}
	}
	return Enumeration{}, ErrUnknownEnumeration
}

// PGTypes returns the Postgres enum type names backing each enumeration.
func PGTypes() []string {
	all := Enumerations()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.PGType
	}
	return names
}

// EnumLabelRepository reads the labels the database holds for its enum types.
// Types absent from the database are absent from the returned map.
type EnumLabelRepository interface {
	ListEnumLabels(ctx context.Context, pgTypes []string) (map[string][]string, error)
}
