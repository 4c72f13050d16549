package domain

import "time"

// Clock supplies timestamps for createdAt/modifiedAt.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
