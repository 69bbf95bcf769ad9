package schedule

import "time"

// Clock supplies "now" to anything that classifies events, so listing and
// registration agree on the same instant and tests can pin it.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

// NewClock returns the wall clock, reporting times in loc.
func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return realClock{loc: loc}
}

func (c realClock) Now() time.Time {
	return time.Now().In(c.loc).Truncate(time.Second)
}

type fixedClock time.Time

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return fixedClock(t)
}

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}
