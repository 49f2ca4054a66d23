package model

import "time"

// Today is the current calendar date at midnight UTC. Records carry dates, not
// instants.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
