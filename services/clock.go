package services

import "time"

// Clock supplies the current instant. The engine derives "today" from it, so
// tests substitute a fixed clock to walk across UTC day boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall clock in UTC.
func SystemClock() Clock { return systemClock{} }

const dateLayout = "2006-01-02"

// dateOf collapses an instant to its UTC calendar day.
func dateOf(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
