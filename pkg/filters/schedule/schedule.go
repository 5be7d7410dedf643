// Package schedule provides date comparison predicates for deciding
// whether a date string lies in the past, the future, or on the current
// day. Inputs are naive local dates (2006-01-02) or datetimes
// (2006-01-02T15:04:05 or 2006-01-02 15:04:05); a date-only input is
// compared against the current calendar date, a datetime against the
// current time truncated to whole seconds.
package schedule

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters"
)

const (
	dateLayout          = "2006-01-02"
	dateTimeLayout      = "2006-01-02T15:04:05"
	dateTimeSpaceLayout = "2006-01-02 15:04:05"
)

var (
	datePattern          = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
	dateTimeSpacePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
)

// Precision says whether an input resolved as a calendar date or a
// full datetime.
type Precision int

const (
	PrecisionDate Precision = iota
	PrecisionDateTime
)

func (p Precision) String() string {
	if p == PrecisionDateTime {
		return "datetime"
	}
	return "date"
}

// Resolution pairs a parsed check value with the clock's current moment
// reduced to the same precision and location, ready for comparison.
type Resolution struct {
	Now       time.Time
	Check     time.Time
	Precision Precision
}

// Comparison operators accepted by IsDue, applied as now <op> check.
const (
	OpEqual          = "=="
	OpNotEqual       = "!="
	OpGreater        = ">"
	OpGreaterOrEqual = ">="
	OpLess           = "<"
	OpLessOrEqual    = "<="
)

// DefaultOperator applies when IsDue is called without an operator.
const DefaultOperator = OpEqual

var operators = map[string]func(now, check time.Time) bool{
	OpEqual:          func(now, check time.Time) bool { return now.Equal(check) },
	OpNotEqual:       func(now, check time.Time) bool { return !now.Equal(check) },
	OpGreater:        func(now, check time.Time) bool { return now.After(check) },
	OpGreaterOrEqual: func(now, check time.Time) bool { return !now.Before(check) },
	OpLess:           func(now, check time.Time) bool { return now.Before(check) },
	OpLessOrEqual:    func(now, check time.Time) bool { return !now.After(check) },
}

// Operators returns the accepted operator symbols in display order.
func Operators() []string {
	return []string{OpEqual, OpNotEqual, OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual}
}

// Module evaluates schedule predicates against an injectable clock.
type Module struct {
	clock Clock
}

// New creates a module backed by the system clock.
func New() *Module {
	return NewWithClock(systemClock{})
}

// NewWithClock creates a module that reads the current time from clock.
func NewWithClock(clock Clock) *Module {
	return &Module{clock: clock}
}

// Resolve matches input against the supported patterns and returns the
// parsed check value alongside the current moment at matching precision.
// Both sides share the clock's location.
func (m *Module) Resolve(input string) (Resolution, error) {
	now := m.clock.Now()
	loc := now.Location()

	switch {
	case datePattern.MatchString(input):
		check, err := time.ParseInLocation(dateLayout, input, loc)
		if err != nil {
			return Resolution{}, &InvalidDateFormatError{Input: input, Err: err}
		}
		return Resolution{
			Now:       time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc),
			Check:     time.Date(check.Year(), check.Month(), check.Day(), 0, 0, 0, 0, loc),
			Precision: PrecisionDate,
		}, nil

	case dateTimePattern.MatchString(input):
		return resolveDateTime(input, dateTimeLayout, now, loc)

	case dateTimeSpacePattern.MatchString(input):
		return resolveDateTime(input, dateTimeSpaceLayout, now, loc)
	}

	return Resolution{}, &InvalidDateFormatError{Input: input}
}

func resolveDateTime(input, layout string, now time.Time, loc *time.Location) (Resolution, error) {
	check, err := time.ParseInLocation(layout, input, loc)
	if err != nil {
		return Resolution{}, &InvalidDateFormatError{Input: input, Err: err}
	}
	return Resolution{
		Now:       time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), 0, loc),
		Check:     check,
		Precision: PrecisionDateTime,
	}, nil
}

// IsPast checks if the date is strictly before the current date (or
// current time, when the input carries a time component).
func (m *Module) IsPast(datestring string) (bool, error) {
	r, err := m.Resolve(datestring)
	if err != nil {
		return false, err
	}
	return r.Check.Before(r.Now), nil
}

// IsTodayOrPast checks if the date is today or earlier.
func (m *Module) IsTodayOrPast(datestring string) (bool, error) {
	r, err := m.Resolve(datestring)
	if err != nil {
		return false, err
	}
	return !r.Check.After(r.Now), nil
}

// IsFuture checks if the date is strictly after the current date (or
// current time, when the input carries a time component).
func (m *Module) IsFuture(datestring string) (bool, error) {
	r, err := m.Resolve(datestring)
	if err != nil {
		return false, err
	}
	return r.Check.After(r.Now), nil
}

// IsTodayOrFuture checks if the date is today or later.
func (m *Module) IsTodayOrFuture(datestring string) (bool, error) {
	r, err := m.Resolve(datestring)
	if err != nil {
		return false, err
	}
	return !r.Check.Before(r.Now), nil
}

// IsToday checks if the date equals the current date (or the current
// second, when the input carries a time component).
func (m *Module) IsToday(datestring string) (bool, error) {
	r, err := m.Resolve(datestring)
	if err != nil {
		return false, err
	}
	return r.Check.Equal(r.Now), nil
}

// IsDue compares the current moment against the date with an explicit
// operator, applied with now on the left-hand side: is_due(d, ">") asks
// whether now > d, so it matches IsPast, and "<" matches IsFuture. The
// operator defaults to "==" when omitted or empty.
func (m *Module) IsDue(datestring string, operator ...string) (bool, error) {
	op := DefaultOperator
	switch len(operator) {
	case 0:
	case 1:
		if operator[0] != "" {
			op = operator[0]
		}
	default:
		return false, fmt.Errorf("is_due accepts at most one operator, got %d", len(operator))
	}

	r, err := m.Resolve(datestring)
	if err != nil {
		return false, err
	}

	cmp, ok := operators[op]
	if !ok {
		return false, &UnknownOperatorError{Operator: op}
	}
	return cmp(r.Now, r.Check), nil
}

// Name implements filters.Provider.
func (m *Module) Name() string { return "schedule" }

// Filters implements filters.Provider. Fixed predicates register with a
// single-argument signature so template arity stays enforced; only
// is_due takes the optional operator.
func (m *Module) Filters() []filters.Filter {
	return []filters.Filter{
		{Name: "is_due", Doc: "is_due(date[, op]): compare now against date with ==, !=, >, >=, < or <=", Func: m.IsDue},
		{Name: "is_past", Doc: "is_past(date): date is before today/now", Func: m.IsPast},
		{Name: "is_today_or_past", Doc: "is_today_or_past(date): date is today/now or earlier", Func: m.IsTodayOrPast},
		{Name: "is_future", Doc: "is_future(date): date is after today/now", Func: m.IsFuture},
		{Name: "is_today_or_future", Doc: "is_today_or_future(date): date is today/now or later", Func: m.IsTodayOrFuture},
		{Name: "is_today", Doc: "is_today(date): date equals today/now", Func: m.IsToday},
	}
}

func init() {
	filters.Register(New())
}
