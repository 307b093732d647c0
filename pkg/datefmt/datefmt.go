// Package datefmt formats dates in the Americanized forms used across kit:
// fixed layouts (M/D/YYYY, "Mon Jan 2") and two relative humanizers that
// describe a time as seen from an explicit "now".
package datefmt

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// DefaultNiceWindow is the weekday window, in days, used by NiceDateTime when
// the caller passes a non-positive window.
const DefaultNiceWindow = 7

var months = [...]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var days = [...]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Month returns the English name of t's month.
func Month(t time.Time) string {
	return months[t.Month()-1]
}

// Day returns the English name of t's day of the week.
func Day(t time.Time) string {
	return days[t.Weekday()]
}

// AddDays returns t moved by n calendar days. t itself is not modified.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Date formats t as M/D/YYYY.
func Date(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// NiceDate formats t as "Mon Jan 2".
func NiceDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d", Day(t)[:3], Month(t)[:3], t.Day())
}

// NicerDate formats t as "Monday January 2".
func NicerDate(t time.Time) string {
	return fmt.Sprintf("%s %s %d", Day(t), Month(t), t.Day())
}

// Time formats t as 24-hour HH:MM:SS in UTC.
func Time(t time.Time) string {
	return t.UTC().Format("15:04:05")
}

// DateTime joins Date and Time with a space.
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// Clock formats t as 12-hour time without padding the hour, e.g. "9:05 PM".
func Clock(t time.Time) string {
	return t.Format("3:04 PM")
}

// dayDiff is the fractional number of days from now to t.
func dayDiff(t, now time.Time) float64 {
	return float64(t.Sub(now)) / float64(day)
}

// NicerDateTime describes t relative to now:
//
//	Today, 12:34 PM
//	Tomorrow, 12:34 PM
//	Yesterday, 12:34 PM
//	Last Monday 12:34 PM
//	Friday 12:34 PM
//	12/31/2020 17:34:00
//
// The Today/Tomorrow/Yesterday forms compare the day of the month in now's
// location, not a 24 hour window, so 23:00 yesterday seen at 01:00 today is
// still "Yesterday".
func NicerDateTime(t, now time.Time) string {
	t = t.In(now.Location())
	d := dayDiff(t, now)

	if math.Abs(d) < 2 {
		switch t.Day() {
		case now.Day():
			return "Today, " + Clock(t)
		case AddDays(now, 1).Day():
			return "Tomorrow, " + Clock(t)
		case AddDays(now, -1).Day():
			return "Yesterday, " + Clock(t)
		}
	}
	if d < 0 && d > -7 {
		return "Last " + Day(t) + " " + Clock(t)
	}
	if d > 0 && d < 7 {
		return Day(t) + " " + Clock(t)
	}
	return DateTime(t)
}

// NiceDateTime is the compact relative form:
//
//	12:34 PM     same day, less than a day away
//	Mon 12:34 PM within window days
//	9/4          within a year
//	12/31/2020   otherwise
//
// A window <= 0 uses DefaultNiceWindow.
func NiceDateTime(t, now time.Time, window int) string {
	if window <= 0 {
		window = DefaultNiceWindow
	}
	t = t.In(now.Location())
	d := math.Abs(dayDiff(t, now))

	if d < 1 && t.Day() == now.Day() {
		return Clock(t)
	}
	if d < float64(window) {
		return Day(t)[:3] + " " + Clock(t)
	}
	if d < 365 {
		return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
	}
	return Date(t)
}

// FromUnixMilli is a convenience for callers holding epoch milliseconds.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms)
}
