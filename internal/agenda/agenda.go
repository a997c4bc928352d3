// Package agenda decides which events belong on the agenda for a given
// instant and in what order they are displayed.
package agenda

import (
	"fmt"
	"sort"
	"time"

	"agendacal/internal/model"
)

// IsActive reports whether ev should appear on the agenda as of now. The
// predicate answers "show this right now", not "does this event exist":
// in-progress timed events stay visible until their end time passes, and
// occurrences outside a recurrence window are suppressed. now is civil
// local time; only its date and wall-clock components are read.
func IsActive(ev model.Event, now time.Time) bool {
	today := model.DateOf(now)
	clock := model.TimeOfDayOf(now)

	switch e := ev.(type) {
	case model.Once:
		return e.Day.Equal(today) && !e.End.Before(clock)
	case model.Recurring:
		return e.OccursOn(today.Weekday()) &&
			!today.Before(e.BeginRecur) &&
			(e.EndRecur == nil || !today.After(*e.EndRecur)) &&
			!e.End.Before(clock)
	case model.AllDay:
		// Half-open range: the begin date counts, the end date does not.
		return !today.Before(e.BeginDate) && today.Before(e.EndDate)
	default:
		panic(fmt.Sprintf("agenda: unhandled event type %T", ev))
	}
}

// Active filters events down to those active at now, preserving input
// order.
func Active(events []model.Event, now time.Time) []model.Event {
	kept := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if IsActive(ev, now) {
			kept = append(kept, ev)
		}
	}
	return kept
}

// Sort orders events for display: every all-day event before every timed
// event, timed events ascending by begin time. The sort is stable, so ties
// (and all-day events among themselves) keep input order.
func Sort(events []model.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		bi, iTimed := beginOf(events[i])
		bj, jTimed := beginOf(events[j])
		if iTimed != jTimed {
			return !iTimed
		}
		return iTimed && bi.Before(bj)
	})
}

// beginOf returns the begin time of a timed event, or timed=false for
// all-day events.
func beginOf(ev model.Event) (begin model.TimeOfDay, timed bool) {
	switch e := ev.(type) {
	case model.Once:
		return e.Begin, true
	case model.Recurring:
		return e.Begin, true
	case model.AllDay:
		return model.TimeOfDay{}, false
	default:
		panic(fmt.Sprintf("agenda: unhandled event type %T", ev))
	}
}
