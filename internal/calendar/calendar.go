// Package calendar maps the working-day offsets produced by the
// scheduling passes onto real dates.
package calendar

import "time"

// Calendar converts working-day offsets to dates. Day 0 is the start
// date. With SkipWeekends set, Saturdays and Sundays are not working
// days: they are stepped over when counting, and a start that falls
// on a weekend rolls forward to the next Monday.
type Calendar struct {
	Start        time.Time
	SkipWeekends bool
}

// DayToDate returns the date for a working-day offset.
//
// With SkipWeekends, offsets at or below zero return the rolled start
// date; the scheduler can produce negative offsets through leads, and
// those land on the project start rather than before it. Without
// SkipWeekends this is plain date arithmetic and negative offsets
// count backwards.
func (c Calendar) DayToDate(offset int) time.Time {
	if !c.SkipWeekends {
		return c.Start.AddDate(0, 0, offset)
	}
	d := nextWorkday(c.Start)
	for added := 0; added < offset; added++ {
		d = nextWorkday(d.AddDate(0, 0, 1))
	}
	return d
}

func nextWorkday(d time.Time) time.Time {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
