package domain

import (
	"database/sql/driver"
	"slices"
)

// QuestionStatus is the moderation stage of a user question.
type QuestionStatus string

const (
	QuestionStatusPending  QuestionStatus = "PENDING"
	QuestionStatusAnswered QuestionStatus = "ANSWERED"
	QuestionStatusHidden   QuestionStatus = "HIDDEN"
)

var questionStatuses = []QuestionStatus{
	QuestionStatusPending,
	QuestionStatusAnswered,
	QuestionStatusHidden,
}

// QuestionStatusValues returns the members of QuestionStatus in declaration order.
func QuestionStatusValues() []QuestionStatus {
	return slices.Clone(questionStatuses)
}

// ParseQuestionStatus returns the member named s. Matching is exact and case-sensitive.
func ParseQuestionStatus(s string) (QuestionStatus, error) {
	return parseMember[QuestionStatus]("QuestionStatus", s)
}

func (q QuestionStatus) String() string {
	return string(q)
}

func (q QuestionStatus) IsValid() bool {
	switch q {
	case QuestionStatusPending, QuestionStatusAnswered, QuestionStatusHidden:
		return true
	}
	return false
}

func (q QuestionStatus) MarshalText() ([]byte, error) {
	return marshalMember("QuestionStatus", q)
}

func (q *QuestionStatus) UnmarshalText(text []byte) error {
	v, err := ParseQuestionStatus(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (q QuestionStatus) Value() (driver.Value, error) {
	return valueMember("QuestionStatus", q)
}

func (q *QuestionStatus) Scan(src any) error {
	v, err := scanMember[QuestionStatus]("QuestionStatus", src)
	if err != nil {
		return err
	}
	*q = v
	return nil
}
