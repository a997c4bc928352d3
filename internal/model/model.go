package model

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no timezone attached. All agenda
// evaluation happens in the caller's local civil time, so a bare
// year/month/day triple is the right currency; zoned time.Time values only
// appear at the ICS export boundary.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a date in the YYYY-MM-DD form used by event documents.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf extracts the civil date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns the midnight instant of d in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time(time.UTC).Sub(d.Time(time.UTC)) / (24 * time.Hour))
}

// Compare orders dates chronologically: -1 if d is before o, 0 if equal,
// +1 if d is after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Equal(o Date) bool  { return d.Compare(o) == 0 }
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// TimeOfDay is a civil wall-clock time, seconds precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q (want HH:MM or HH:MM:SS)", s)
}

// TimeOfDayOf extracts the wall-clock time of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Seconds returns the offset from midnight in seconds.
func (t TimeOfDay) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) Compare(o TimeOfDay) int { return sign(t.Seconds() - o.Seconds()) }
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Seconds() < o.Seconds() }

// Event is the closed set of event shapes an event document can describe.
// Consumers (filter, ordering, rendering, export) type-switch over the three
// concrete types, so adding a shape is a compile-visible change at every
// point that matters.
type Event interface {
	// Title is the display title shared by all shapes.
	Title() string

	isEvent()
}

// Once is a single-occurrence timed event on one calendar day. Begin/End
// are not validated against each other; an End before Begin is accepted
// as-is and simply stops matching once the end time passes.
type Once struct {
	Summary string
	Begin   TimeOfDay
	End     TimeOfDay
	Day     Date
}

// Recurring is a weekly-repeating timed event. EndRecur is inclusive and
// nil for an open-ended recurrence. Days is the non-empty set of weekdays
// the event occurs on.
type Recurring struct {
	Summary    string
	Begin      TimeOfDay
	End        TimeOfDay
	BeginRecur Date
	EndRecur   *Date
	Days       []time.Weekday
}

// AllDay is a date-range event with no time component. EndDate is
// exclusive: a one-day event has EndDate == BeginDate.AddDays(1). A
// document that omits endDate is stored with EndDate == BeginDate, an
// empty range; consumers treat the stored end as exclusive regardless.
type AllDay struct {
	Summary   string
	BeginDate Date
	EndDate   Date
}

func (e Once) Title() string      { return e.Summary }
func (e Recurring) Title() string { return e.Summary }
func (e AllDay) Title() string    { return e.Summary }

func (Once) isEvent()      {}
func (Recurring) isEvent() {}
func (AllDay) isEvent()    {}

// OccursOn reports whether the recurrence weekday set contains day.
func (e Recurring) OccursOn(day time.Weekday) bool {
	for _, d := range e.Days {
		if d == day {
			return true
		}
	}
	return false
}
