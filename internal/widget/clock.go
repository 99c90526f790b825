package widget

import "time"

// Clock supplies wall-clock time to the widget's deadlines.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
