package domain

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced entity does not exist.
// The boundary layer translates it to a 404 response.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for the given entity kind and id.
func NewNotFound(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// RuleViolationError signals that an operation would break a business
// invariant (team size, slot occupancy, backpack limits, battle rules).
// Reason is a human-readable message safe to return to the client.
type RuleViolationError struct {
	Reason string
}

func (e *RuleViolationError) Error() string {
	return e.Reason
}

// NewRuleViolation builds a RuleViolationError with a formatted reason.
func NewRuleViolation(format string, args ...interface{}) error {
	return &RuleViolationError{Reason: fmt.Sprintf(format, args...)}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsRuleViolation reports whether err is a RuleViolationError.
func IsRuleViolation(err error) bool {
	var rv *RuleViolationError
	return errors.As(err, &rv)
}
