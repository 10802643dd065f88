package cache

import (
	"time"
)

// TimeUntilJakartaClose returns the duration until the next 18:00 Jakarta
// time, when the IDX session is over and the day's final bar exists.
func TimeUntilJakartaClose() time.Duration {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	now := time.Now().In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, loc)

	// Today's close already passed: use tomorrow's.
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
