package store

import "time"

// Clock abstracts the current time so tests can control server-assigned
// timestamps (registration dates, record dates, activity timestamps).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the wall clock used in production.
func SystemClock() Clock { return systemClock{} }
