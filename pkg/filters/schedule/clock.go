package schedule

import "time"

// Clock abstracts the source of the current time so predicates can be
// pinned to a fixed moment in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
