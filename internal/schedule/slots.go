package schedule

import (
	"fmt"
	"time"
)

// Slot labels travel as 12-hour clock strings ("2:15 PM") because that is what
// customers see and what the store persists. All comparison and arithmetic
// happens on minutes since midnight; labels are converted at the boundary.

const (
	universeOpen  = 10 * 60 // 10:00 AM, earliest slot of any day
	universeClose = 20 * 60 // 8:00 PM, latest slot of any day
)

func MinutesFromLabel(label string) (int, error) {
	t, err := time.Parse("3:04 PM", label)
	if err != nil {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func LabelFromMinutes(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("3:04 PM")
}

// Window is the range of valid slot start times for a day, in minutes since
// midnight, inclusive of both ends.
type Window struct {
	Open  int
	Close int
}

func (w Window) Contains(m int) bool {
	return m >= w.Open && m <= w.Close
}

// WindowForWeekday returns the bookable window for a day of the week.
// Sunday runs 1:00 PM through 8:00 PM, every other day 10:00 AM through
// 7:00 PM, both ends inclusive.
func WindowForWeekday(day time.Weekday) Window {
	if day == time.Sunday {
		return Window{Open: 13 * 60, Close: 20 * 60}
	}
	return Window{Open: 10 * 60, Close: 19 * 60}
}

// SlotsForDate returns the ordered slot labels valid on date at the given
// granularity. A zero date yields the full slot universe; that is a display
// fallback, not an availability answer.
func SlotsForDate(date time.Time, granularityMinutes int) []string {
	w := Window{Open: universeOpen, Close: universeClose}
	if !date.IsZero() {
		w = WindowForWeekday(date.Weekday())
	}

	slots := make([]string, 0, (w.Close-w.Open)/granularityMinutes+1)
	for m := w.Open; m <= w.Close; m += granularityMinutes {
		slots = append(slots, LabelFromMinutes(m))
	}
	return slots
}
