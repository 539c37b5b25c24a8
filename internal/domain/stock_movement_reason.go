package domain

import (
	"database/sql/driver"
	"slices"
)

// StockMovementReason is the cause of a stock ledger entry. It is recorded
// next to an AdjustmentType but the two sets are independent.
type StockMovementReason string

const (
	StockMovementReasonSale         StockMovementReason = "SALE"
	StockMovementReasonReturn       StockMovementReason = "RETURN"
	StockMovementReasonAdjustment   StockMovementReason = "ADJUSTMENT"
	StockMovementReasonInitialStock StockMovementReason = "INITIAL_STOCK"
)

var stockMovementReasons = []StockMovementReason{
	StockMovementReasonSale,
	StockMovementReasonReturn,
	StockMovementReasonAdjustment,
	StockMovementReasonInitialStock,
}

// StockMovementReasonValues returns the members of StockMovementReason in declaration order.
func StockMovementReasonValues() []StockMovementReason {
	return slices.Clone(stockMovementReasons)
}

// ParseStockMovementReason returns the member named s. Matching is exact and case-sensitive.
func ParseStockMovementReason(s string) (StockMovementReason, error) {
	return parseMember[StockMovementReason]("StockMovementReason", s)
}

func (s StockMovementReason) String() string {
	return string(s)
}

func (s StockMovementReason) IsValid() bool {
	switch s {
	case StockMovementReasonSale, StockMovementReasonReturn, StockMovementReasonAdjustment, StockMovementReasonInitialStock:
		return true
	}
	return false
}

func (s StockMovementReason) MarshalText() ([]byte, error) {
	return marshalMember("StockMovementReason", s)
}

func (s *StockMovementReason) UnmarshalText(text []byte) error {
	v, err := ParseStockMovementReason(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s StockMovementReason) Value() (driver.Value, error) {
	return valueMember("StockMovementReason", s)
}

func (s *StockMovementReason) Scan(src any) error {
	v, err := scanMember[StockMovementReason]("StockMovementReason", src)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
