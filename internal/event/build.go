// Package event interprets a parsed header field mapping as one typed
// calendar event.
package event

import (
	"fmt"
	"time"

	"agendacal/internal/header"
	"agendacal/internal/model"
)

// openEnded is the literal scalar that marks an endRecur as absent. Some
// document generators write an explicit quoted empty string instead of
// omitting the key.
const openEnded = `""`

// Build selects an event shape from the discriminator fields and parses the
// fields that shape requires. The precedence is fixed:
//
//  1. allDay == "true"            -> AllDay
//  2. type absent or == "single"  -> Once
//  3. anything else               -> Recurring
//
// The discriminator reads fall back to their defaults when the field is
// missing or list-shaped; required-field reads report missing fields, shape
// mismatches, and unparseable values with the field named in the error.
func Build(fields header.Fields) (model.Event, error) {
	if scalarOr(fields, "allDay", "false") == "true" {
		return buildAllDay(fields)
	}
	if scalarOr(fields, "type", "single") == "single" {
		return buildOnce(fields)
	}
	return buildRecurring(fields)
}

func buildAllDay(fields header.Fields) (model.Event, error) {
	title, err := fields.Scalar("title")
	if err != nil {
		return nil, err
	}
	begin, err := dateField(fields, "date")
	if err != nil {
		return nil, err
	}

	// endDate is optional; a one-day event keeps end == begin and relies on
	// consumers treating the stored end as exclusive.
	end := begin
	if s, serr := fields.Scalar("endDate"); serr == nil {
		d, derr := model.ParseDate(s)
		if derr != nil {
			return nil, fmt.Errorf("field %q: %w", "endDate", derr)
		}
		end = d
	}

	return model.AllDay{Summary: title, BeginDate: begin, EndDate: end}, nil
}

func buildOnce(fields header.Fields) (model.Event, error) {
	title, err := fields.Scalar("title")
	if err != nil {
		return nil, err
	}
	begin, err := timeField(fields, "startTime")
	if err != nil {
		return nil, err
	}
	end, err := timeField(fields, "endTime")
	if err != nil {
		return nil, err
	}
	day, err := dateField(fields, "date")
	if err != nil {
		return nil, err
	}

	return model.Once{Summary: title, Begin: begin, End: end, Day: day}, nil
}

func buildRecurring(fields header.Fields) (model.Event, error) {
	title, err := fields.Scalar("title")
	if err != nil {
		return nil, err
	}
	begin, err := timeField(fields, "startTime")
	if err != nil {
		return nil, err
	}
	end, err := timeField(fields, "endTime")
	if err != nil {
		return nil, err
	}
	beginRecur, err := dateField(fields, "startRecur")
	if err != nil {
		return nil, err
	}

	var endRecur *model.Date
	if s, serr := fields.Scalar("endRecur"); serr == nil && s != openEnded {
		d, derr := model.ParseDate(s)
		if derr != nil {
			return nil, fmt.Errorf("field %q: %w", "endRecur", derr)
		}
		endRecur = &d
	}

	items, err := fields.List("daysOfWeek")
	if err != nil {
		return nil, err
	}
	days := make([]time.Weekday, len(items))
	for i, code := range items {
		d, derr := parseWeekdayCode(code)
		if derr != nil {
			return nil, derr
		}
		days[i] = d
	}

	return model.Recurring{
		Summary:    title,
		Begin:      begin,
		End:        end,
		BeginRecur: beginRecur,
		EndRecur:   endRecur,
		Days:       days,
	}, nil
}

// parseWeekdayCode maps the single-letter recurrence codes to weekdays.
// R is Thursday and U is Sunday so that Tuesday and Saturday keep T and S.
func parseWeekdayCode(code string) (time.Weekday, error) {
	switch code {
	case "M":
		return time.Monday, nil
	case "T":
		return time.Tuesday, nil
	case "W":
		return time.Wednesday, nil
	case "R":
		return time.Thursday, nil
	case "F":
		return time.Friday, nil
	case "S":
		return time.Saturday, nil
	case "U":
		return time.Sunday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown weekday %q", code)
	}
}

// scalarOr reads key as a scalar, falling back to def when the field is
// missing or not scalar-shaped. Discriminator fields use this so that an
// odd shape selects the default branch instead of failing outright.
func scalarOr(fields header.Fields, key, def string) string {
	if s, err := fields.Scalar(key); err == nil {
		return s
	}
	return def
}

func dateField(fields header.Fields, key string) (model.Date, error) {
	s, err := fields.Scalar(key)
	if err != nil {
		return model.Date{}, err
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, fmt.Errorf("field %q: %w", key, err)
	}
	return d, nil
}

func timeField(fields header.Fields, key string) (model.TimeOfDay, error) {
	s, err := fields.Scalar(key)
	if err != nil {
		return model.TimeOfDay{}, err
	}
	t, err := model.ParseTimeOfDay(s)
	if err != nil {
		return model.TimeOfDay{}, fmt.Errorf("field %q: %w", key, err)
	}
	return t, nil
}
