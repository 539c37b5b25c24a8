package domain

import (
	"database/sql/driver"
	"slices"
)

// ContactStatus is the lifecycle stage of a contact or support message.
type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "NEW"
	ContactStatusRead     ContactStatus = "READ"
	ContactStatusReplied  ContactStatus = "REPLIED"
	ContactStatusArchived ContactStatus = "ARCHIVED"
)

var contactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusRead,
	ContactStatusReplied,
	ContactStatusArchived,
}

// ContactStatusValues returns the members of ContactStatus in declaration order.
func ContactStatusValues() []ContactStatus {
	return slices.Clone(contactStatuses)
}

// ParseContactStatus returns the member named s. Matching is exact and case-sensitive.
func ParseContactStatus(s string) (ContactStatus, error) {
	return parseMember[ContactStatus]("ContactStatus", s)
}

func (c ContactStatus) String() string {
	return string(c)
}

func (c ContactStatus) IsValid() bool {
	switch c {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

func (c ContactStatus) MarshalText() ([]byte, error) {
	return marshalMember("ContactStatus", c)
}

func (c *ContactStatus) UnmarshalText(text []byte) error {
	v, err := ParseContactStatus(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c ContactStatus) Value() (driver.Value, error) {
	return valueMember("ContactStatus", c)
}

func (c *ContactStatus) Scan(src any) error {
	v, err := scanMember[ContactStatus]("ContactStatus", src)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
