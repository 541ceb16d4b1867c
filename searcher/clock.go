package searcher

import (
	"math"
	"time"
)

// TimeLeft reports how much of the move budget remains. It is owned by the
// caller, only ever queried by the search, and expected to decrease.
type TimeLeft func() time.Duration

// Unlimited never runs out.
var Unlimited TimeLeft = func() time.Duration {
	return math.MaxInt64
}

// Countdown starts a budget of the given length now.
func Countdown(budget time.Duration) TimeLeft {
	return Deadline(time.Now().Add(budget))
}

// Deadline measures the time left until t; it goes negative once t has passed.
func Deadline(t time.Time) TimeLeft {
	return func() time.Duration {
		return time.Until(t)
	}
}
