package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidDateFormat matches any input rejected during date resolution.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrUnknownOperator matches operator symbols outside the comparison set.
var ErrUnknownOperator = errors.New("unknown operator")

// InvalidDateFormatError reports an input that matched none of the
// supported patterns, or matched one but did not parse as a real date.
type InvalidDateFormatError struct {
	Input string
	Err   error
}

func (e *InvalidDateFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid date format: %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid date format: %q (expected %s, %s or %s)",
		e.Input, dateLayout, dateTimeLayout, dateTimeSpaceLayout)
}

func (e *InvalidDateFormatError) Unwrap() error { return ErrInvalidDateFormat }

// UnknownOperatorError reports an operator symbol IsDue does not accept.
type UnknownOperatorError struct {
	Operator string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %q (expected one of ==, !=, >, >=, <, <=)", e.Operator)
}

func (e *UnknownOperatorError) Unwrap() error { return ErrUnknownOperator }
