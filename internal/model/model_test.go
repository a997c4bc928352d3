package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-03")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year != 2024 || d.Month != time.June || d.Day != 3 {
		t.Errorf("got %v, want 2024-06-03", d)
	}

	for _, bad := range []string{"", "2024-13-01", "06/03/2024", "2024-06-03T00:00:00"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if got != (TimeOfDay{Hour: 9, Minute: 5}) {
		t.Errorf("got %v, want 09:05:00", got)
	}

	got, err = ParseTimeOfDay("23:59:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay failed: %v", err)
	}
	if got != (TimeOfDay{Hour: 23, Minute: 59, Second: 30}) {
		t.Errorf("got %v, want 23:59:30", got)
	}

	for _, bad := range []string{"", "25:00", "9am", "12:60"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", bad)
		}
	}
}

func TestDateWeekday(t *testing.T) {
	// 2024-06-03 was a Monday.
	d := Date{Year: 2024, Month: time.June, Day: 3}
	if got := d.Weekday(); got != time.Monday {
		t.Errorf("Weekday = %v, want Monday", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	d := Date{Year: 2024, Month: time.June, Day: 30}

	next := d.AddDays(1)
	if !next.Equal(Date{Year: 2024, Month: time.July, Day: 1}) {
		t.Errorf("AddDays(1) = %v, want 2024-07-01", next)
	}
	prev := d.AddDays(-30)
	if !prev.Equal(Date{Year: 2024, Month: time.May, Day: 31}) {
		t.Errorf("AddDays(-30) = %v, want 2024-05-31", prev)
	}
	if got := d.DaysUntil(next); got != 1 {
		t.Errorf("DaysUntil = %d, want 1", got)
	}
	if got := d.DaysUntil(d); got != 0 {
		t.Errorf("DaysUntil(self) = %d, want 0", got)
	}
}

func TestDateCompare(t *testing.T) {
	a := Date{Year: 2024, Month: time.June, Day: 3}
	b := Date{Year: 2024, Month: time.June, Day: 4}
	c := Date{Year: 2025, Month: time.January, Day: 1}

	if !a.Before(b) || b.Before(a) {
		t.Error("2024-06-03 must sort before 2024-06-04")
	}
	if !b.Before(c) {
		t.Error("2024-06-04 must sort before 2025-01-01")
	}
	if !c.After(a) {
		t.Error("2025-01-01 must sort after 2024-06-03")
	}
	if !a.Equal(a) || a.Compare(a) != 0 {
		t.Error("a date must equal itself")
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	early := TimeOfDay{Hour: 9}
	late := TimeOfDay{Hour: 9, Second: 1}

	if !early.Before(late) {
		t.Error("09:00:00 must be before 09:00:01")
	}
	if early.Before(early) {
		t.Error("a time must not be before itself")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 {
		t.Error("Compare signs wrong")
	}
}

func TestEventTitle(t *testing.T) {
	events := []Event{
		Once{Summary: "a"},
		Recurring{Summary: "b"},
		AllDay{Summary: "c"},
	}
	want := []string{"a", "b", "c"}
	for i, ev := range events {
		if ev.Title() != want[i] {
			t.Errorf("Title() = %q, want %q", ev.Title(), want[i])
		}
	}
}

func TestRecurringOccursOn(t *testing.T) {
	e := Recurring{Days: []time.Weekday{time.Monday, time.Thursday}}
	if !e.OccursOn(time.Monday) || !e.OccursOn(time.Thursday) {
		t.Error("expected Monday and Thursday to match")
	}
	if e.OccursOn(time.Tuesday) {
		t.Error("Tuesday must not match")
	}
}
