// Package render formats one agenda event as a human-readable line.
package render

import (
	"fmt"
	"time"

	"agendacal/internal/model"
)

// Line renders ev as one agenda line. now must be the same captured
// timestamp used for filtering so the countdown hint agrees with the
// selection.
//
// Timed events:   "HH:MM - HH:MM (hint)     | title"
// One-day range:  "Today                    | title"
// Multi-day:      "Jan 02 - Jan 05          | title"
func Line(ev model.Event, now time.Time) string {
	switch e := ev.(type) {
	case model.Once:
		return timedLine(e.Begin, e.End, e.Summary, now)
	case model.Recurring:
		return timedLine(e.Begin, e.End, e.Summary, now)
	case model.AllDay:
		return allDayLine(e)
	default:
		panic(fmt.Sprintf("render: unhandled event type %T", ev))
	}
}

func timedLine(begin, end model.TimeOfDay, title string, now time.Time) string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d %-10s | %s",
		begin.Hour, begin.Minute, end.Hour, end.Minute,
		countdown(begin, model.TimeOfDayOf(now)), title)
}

// countdown is the parenthesized relative-time hint for a timed event:
// "(Now)" once begin is a full minute in the past, minutes under an hour,
// whole hours otherwise. Divisions truncate toward zero, so the 59 seconds
// around begin still read as "(0 mins)".
func countdown(begin, clock model.TimeOfDay) string {
	deltaSec := begin.Seconds() - clock.Seconds()
	mins := deltaSec / 60
	if mins < 0 {
		return "(Now)"
	}
	if mins < 60 {
		return fmt.Sprintf("(%d min%s)", mins, plural(mins))
	}
	hours := deltaSec / 3600
	return fmt.Sprintf("(%d hour%s)", hours, plural(hours))
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func allDayLine(e model.AllDay) string {
	if e.BeginDate.DaysUntil(e.EndDate) == 1 {
		return fmt.Sprintf("Today                    | %s", e.Summary)
	}
	// The stored end is exclusive; show the inclusive last day.
	last := e.EndDate.AddDays(-1)
	return fmt.Sprintf("%s - %s          | %s",
		monthDay(e.BeginDate), monthDay(last), e.Summary)
}

func monthDay(d model.Date) string {
	return d.Time(time.UTC).Format("Jan 02")
}
