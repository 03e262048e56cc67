// Package elapsed turns a quit date into the counters and message shown for it.
package elapsed

import (
	"time"

	"github.com/brk3/quit/pkg/habit"
)

const day = 24 * time.Hour

// Compute decomposes now-quit into whole days, hours, minutes and seconds.
// A quit instant after now yields all zeros.
func Compute(quit, now time.Time) habit.Elapsed {
	diff := now.Sub(quit)
	if diff <= 0 {
		return habit.Elapsed{}
	}

	days := int(diff / day)
	diff -= time.Duration(days) * day
	hours := int(diff / time.Hour)
	diff -= time.Duration(hours) * time.Hour
	minutes := int(diff / time.Minute)
	diff -= time.Duration(minutes) * time.Minute
	seconds := int(diff / time.Second)

	return habit.Elapsed{
		Days:      days,
		Hours:     hours,
		Minutes:   minutes,
		Seconds:   seconds,
		TotalDays: days,
	}
}

// ForHabit is Compute applied to the habit's quit date.
func ForHabit(h habit.TrackedHabit, now time.Time) habit.Elapsed {
	return Compute(h.QuitDate.Time(), now)
}

// Progress bundles the counters and message for h at now.
func Progress(h habit.TrackedHabit, now time.Time) habit.Progress {
	e := ForHabit(h, now)
	return habit.Progress{
		Habit:   h,
		Elapsed: e,
		Message: Message(e.TotalDays),
		AsOf:    now,
	}
}
