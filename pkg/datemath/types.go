package datemath

import "time"

// StoredLayout is the wall-clock layout deadlines are written to the task store with.
const StoredLayout = "2006-01-02T15:04:05"

// Default times of day applied when a phrase carries no explicit HH:MM.
const (
	defaultEndHour     = 17
	defaultEndMinute   = 30
	defaultStartHour   = 9
	defaultStartMinute = 0
)

// Resolution is the outcome of resolving a deadline phrase.
type Resolution struct {
	Time     time.Time
	Phrase   string // input as given
	Resolved bool
}

// String returns the stored form of the deadline, or the untouched phrase
// when it could not be resolved.
func (r Resolution) String() string {
	if !r.Resolved {
		return r.Phrase
	}
	return r.Time.Format(StoredLayout)
}
