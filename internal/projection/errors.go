package projection

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid projection input")

	// ErrDivergentPayback is matched by every *DivergentPaybackError.
	ErrDivergentPayback = errors.New("investment is never recovered")

	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("projection out of numeric range")
)

// InvalidInputError reports a missing or out-of-domain input field.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Is lets callers match with errors.Is(err, ErrInvalidInput).
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// DivergentPaybackError reports a monthly net cash flow that is not a
// positive finite number, for which no payback period exists.
type DivergentPaybackError struct {
	MonthlyNetCashFlow float64
}

func (e *DivergentPaybackError) Error() string {
	return fmt.Sprintf("payback undefined: monthly net cash flow is %.2f", e.MonthlyNetCashFlow)
}

// Is lets callers match with errors.Is(err, ErrDivergentPayback).
func (e *DivergentPaybackError) Is(target error) bool {
	return target == ErrDivergentPayback
}

// RangeError reports a projection whose inputs are valid but whose figures
// cannot be represented, such as a payback period beyond maxPaybackMonths.
type RangeError struct {
	Quantity string
	Value    float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: %g", e.Quantity, e.Value)
}

// Is lets callers match with errors.Is(err, ErrOutOfRange).
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func invalid(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
