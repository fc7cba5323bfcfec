package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now returns local wall-clock time. Day bucketing follows the user's
// calendar, so the zone must not be normalized to UTC here.
func (SystemClock) Now() time.Time {
	return time.Now()
}
