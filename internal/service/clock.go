package service

import "time"

// timestamp normalises clock readings to what every supported store can hold
// without loss.
func timestamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Millisecond)
}
