// Package ics writes the active agenda as an iCalendar document.
package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"agendacal/internal/model"
)

// Export serializes events to w as a VCALENDAR. Timed events become plain
// VEVENTs, all-day events keep their exclusive DTEND, and recurring events
// carry a weekly RRULE built from their weekday set. now is used for
// DTSTAMP on every component.
func Export(w io.Writer, events []model.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//agendacal//agenda export//EN")

	for i, ev := range events {
		ve := cal.AddEvent(fmt.Sprintf("agendacal-%d", i+1))
		ve.SetDtStampTime(now.UTC())
		ve.SetSummary(ev.Title())

		switch e := ev.(type) {
		case model.Once:
			ve.SetStartAt(atTime(e.Day, e.Begin))
			ve.SetEndAt(atTime(e.Day, e.End))
		case model.AllDay:
			ve.SetAllDayStartAt(e.BeginDate.Time(time.Local))
			ve.SetAllDayEndAt(e.EndDate.Time(time.Local))
		case model.Recurring:
			ve.SetStartAt(atTime(e.BeginRecur, e.Begin))
			ve.SetEndAt(atTime(e.BeginRecur, e.End))
			rule, err := weeklyRule(e)
			if err != nil {
				return fmt.Errorf("event %q: %w", e.Summary, err)
			}
			ve.AddRrule(rule)
		default:
			return fmt.Errorf("unhandled event type %T", ev)
		}
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

// weeklyRule builds the RRULE value (FREQ=WEEKLY;BYDAY=...) for a recurring
// event. An inclusive recurrence end becomes UNTIL at the last second of
// that day, anchored in local time to match the DTSTART frame.
func weeklyRule(e model.Recurring) (string, error) {
	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: make([]rrule.Weekday, len(e.Days)),
	}
	for i, d := range e.Days {
		opt.Byweekday[i] = rruleWeekday(d)
	}
	if e.EndRecur != nil {
		last := *e.EndRecur
		opt.Until = time.Date(last.Year, last.Month, last.Day, 23, 59, 59, 0, time.Local)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return "", err
	}
	return rule.String(), nil
}

func rruleWeekday(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}

func atTime(d model.Date, t model.TimeOfDay) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, 0, time.Local)
}
