package render

import (
	"strings"
	"testing"
	"time"

	"agendacal/internal/model"
)

var day = model.Date{Year: 2024, Month: time.June, Day: 3}

func clock(hour, min, sec int) time.Time {
	return time.Date(day.Year, day.Month, day.Day, hour, min, sec, 0, time.Local)
}

func TestLineTimedExact(t *testing.T) {
	ev := model.Once{
		Summary: "Standup",
		Begin:   model.TimeOfDay{Hour: 9},
		End:     model.TimeOfDay{Hour: 9, Minute: 15},
		Day:     day,
	}
	got := Line(ev, clock(8, 30, 0))
	want := "09:00 - 09:15 (30 mins)  | Standup"
	if got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}

func TestCountdownHints(t *testing.T) {
	cases := []struct {
		name  string
		begin model.TimeOfDay
		now   time.Time
		hint  string
	}{
		{"half hour out", model.TimeOfDay{Hour: 9}, clock(8, 30, 0), "(30 mins)"},
		{"one minute", model.TimeOfDay{Hour: 8, Minute: 31}, clock(8, 30, 0), "(1 min)"},
		{"zero minutes", model.TimeOfDay{Hour: 8, Minute: 30}, clock(8, 30, 0), "(0 mins)"},
		{"under a minute past", model.TimeOfDay{Hour: 8, Minute: 30}, clock(8, 30, 30), "(0 mins)"},
		{"a full minute past", model.TimeOfDay{Hour: 8, Minute: 29}, clock(8, 30, 0), "(Now)"},
		{"long past", model.TimeOfDay{Hour: 6}, clock(8, 30, 0), "(Now)"},
		{"exactly one hour", model.TimeOfDay{Hour: 9, Minute: 30}, clock(8, 30, 0), "(1 hour)"},
		{"105 minutes truncates", model.TimeOfDay{Hour: 10, Minute: 15}, clock(8, 30, 0), "(1 hour)"},
		{"two hours", model.TimeOfDay{Hour: 10, Minute: 30}, clock(8, 30, 0), "(2 hours)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := model.Once{Summary: "X", Begin: tc.begin, End: model.TimeOfDay{Hour: 23}, Day: day}
			got := Line(ev, tc.now)
			if !strings.Contains(got, tc.hint) {
				t.Errorf("Line = %q, want hint %q", got, tc.hint)
			}
		})
	}
}

func TestLineRecurringUsesSameShape(t *testing.T) {
	ev := model.Recurring{
		Summary: "Gym",
		Begin:   model.TimeOfDay{Hour: 18},
		End:     model.TimeOfDay{Hour: 19, Minute: 30},
		Days:    []time.Weekday{time.Monday},
	}
	got := Line(ev, clock(17, 0, 0))
	want := "18:00 - 19:30 (1 hour)   | Gym"
	if got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}

func TestLineAllDaySingleDay(t *testing.T) {
	ev := model.AllDay{
		Summary:   "Moving day",
		BeginDate: day,
		EndDate:   day.AddDays(1),
	}
	got := Line(ev, clock(8, 0, 0))
	want := "Today                    | Moving day"
	if got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}

func TestLineAllDayRangeShowsInclusiveLastDay(t *testing.T) {
	ev := model.AllDay{
		Summary:   "Trip",
		BeginDate: day,
		EndDate:   day.AddDays(3), // exclusive: last day is Jun 05
	}
	got := Line(ev, clock(8, 0, 0))
	want := "Jun 03 - Jun 05          | Trip"
	if got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}

func TestLineAllDayRangeAcrossMonths(t *testing.T) {
	ev := model.AllDay{
		Summary:   "Course",
		BeginDate: model.Date{Year: 2024, Month: time.June, Day: 28},
		EndDate:   model.Date{Year: 2024, Month: time.July, Day: 3},
	}
	got := Line(ev, clock(8, 0, 0))
	want := "Jun 28 - Jul 02          | Course"
	if got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}
}
