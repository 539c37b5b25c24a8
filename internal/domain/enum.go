package domain

import (
	"database/sql/driver"
	"fmt"
)

// member is satisfied by every enumeration in this package.
type member interface {
	~string
	IsValid() bool
}

func parseMember[T member](enumeration, s string) (T, error) {
	v := T(s)
	if !v.IsValid() {
		var zero T
		return zero, &UnknownValueError{Enumeration: enumeration, Value: s}
	}
	return v, nil
}

func marshalMember[T member](enumeration string, v T) ([]byte, error) {
	if !v.IsValid() {
		return nil, &UnknownValueError{Enumeration: enumeration, Value: string(v)}
	}
	return []byte(v), nil
}

func valueMember[T member](enumeration string, v T) (driver.Value, error) {
	if !v.IsValid() {
		return nil, &UnknownValueError{Enumeration: enumeration, Value: string(v)}
	}
	return string(v), nil
}

// scanMember accepts the text and bytea forms drivers hand back for enum and
// text columns. NULL and any other source type are rejected.
func scanMember[T member](enumeration string, src any) (T, error) {
	switch v := src.(type) {
	case string:
		return parseMember[T](enumeration, v)
	case []byte:
		return parseMember[T](enumeration, string(v))
	}
	var zero T
	return zero, &UnknownValueError{Enumeration: enumeration, Value: fmt.Sprint(src)}
}

func memberNames[T ~string](values []T) []string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return names
}
