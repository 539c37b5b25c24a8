package domain

import (
	"database/sql/driver"
	"slices"
)

// AdjustmentType is the cause of an inventory quantity change.
type AdjustmentType string

const (
	AdjustmentTypeIncrease    AdjustmentType = "INCREASE"
	AdjustmentTypeDecrease    AdjustmentType = "DECREASE"
	AdjustmentTypeCorrection  AdjustmentType = "CORRECTION"
	AdjustmentTypeReservation AdjustmentType = "RESERVATION"
	AdjustmentTypeRelease     AdjustmentType = "RELEASE"
	AdjustmentTypeReturned    AdjustmentType = "RETURNED"
	AdjustmentTypeDamaged     AdjustmentType = "DAMAGED"
)

var adjustmentTypes = []AdjustmentType{
	AdjustmentTypeIncrease,
	AdjustmentTypeDecrease,
	AdjustmentTypeCorrection,
	AdjustmentTypeReservation,
	AdjustmentTypeRelease,
	AdjustmentTypeReturned,
	AdjustmentTypeDamaged,
}

// AdjustmentTypeValues returns the members of AdjustmentType in declaration order.
func AdjustmentTypeValues() []AdjustmentType {
	return slices.Clone(adjustmentTypes)
}

// ParseAdjustmentType returns the member named s. Matching is exact and case-sensitive.
func ParseAdjustmentType(s string) (AdjustmentType, error) {
	return parseMember[AdjustmentType]("AdjustmentType", s)
}

func (a AdjustmentType) String() string {
	return string(a)
}

func (a AdjustmentType) IsValid() bool {
	switch a {
	case AdjustmentTypeIncrease, AdjustmentTypeDecrease, AdjustmentTypeCorrection, AdjustmentTypeReservation, AdjustmentTypeRelease, AdjustmentTypeReturned, AdjustmentTypeDamaged:
		return true
	}
	return false
}

func (a AdjustmentType) MarshalText() ([]byte, error) {
	return marshalMember("AdjustmentType", a)
}

func (a *AdjustmentType) UnmarshalText(text []byte) error {
	v, err := ParseAdjustmentType(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a AdjustmentType) Value() (driver.Value, error) {
	return valueMember("AdjustmentType", a)
}

func (a *AdjustmentType) Scan(src any) error {
	v, err := scanMember[AdjustmentType]("AdjustmentType", src)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
