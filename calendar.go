package dateparser

import "time"

// isoWeekday returns the weekday index of t with Monday = 0 .. Sunday = 6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// weekdayTarget returns the target weekday in the week at weekOffset from
// base, preserving base's time of day. The day delta stays signed: it is
// not normalized into 0..6, so the result always lands inside the ISO week
// addressed by weekOffset.
func weekdayTarget(base time.Time, weekOffset, targetWeekday int) time.Time {
	delta := targetWeekday - isoWeekday(base) + weekOffset*7
	return base.AddDate(0, 0, delta)
}

// monthDayTarget returns the given day in the calendar month at
// monthOffset from base. When day does not exist in that month the result
// clamps to the month's last day. Time of day and location are preserved
// from base.
func monthDayTarget(base time.Time, monthOffset, day int) time.Time {
	year := base.Year()
	month := int(base.Month()) - 1 + monthOffset
	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	target := time.Month(month + 1)
	if last := daysInMonth(year, target); day > last {
		day = last
	}

	return time.Date(year, target, day,
		base.Hour(), base.Minute(), base.Second(), base.Nanosecond(),
		base.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of
// the following month normalizes to the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
