package calendar

import (
	"time"

	"cloud.google.com/go/civil"
)

// YearCalendar bundles everything a renderer needs to draw a year: the
// observed holidays and the carnival overlay.
type YearCalendar struct {
	Year     int              `json:"year" yaml:"year"`
	Easter   civil.Date       `json:"easter" yaml:"easter"`
	Holidays []ShiftedHoliday `json:"holidays" yaml:"holidays"`
	Carnival CarnivalWindow   `json:"carnival" yaml:"carnival"`
}

// ForYear computes the calendar for a year.
func ForYear(year int) YearCalendar {
	return YearCalendar{
		Year:     year,
		Easter:   CalculateEaster(year),
		Holidays: ApplyLeyEmiliani(BuildHolidays(year)),
		Carnival: DeriveCarnival(year),
	}
}

// DayInfo describes what is observed on a single day.
type DayInfo struct {
	Date         civil.Date      `json:"date" yaml:"date"`
	Weekday      string          `json:"weekday" yaml:"weekday"`
	Holiday      *ShiftedHoliday `json:"holiday,omitempty" yaml:"holiday,omitempty"`
	Carnival     bool            `json:"carnival" yaml:"carnival"`
	AshWednesday bool            `json:"ash_wednesday" yaml:"ash_wednesday"`
	Sunday       bool            `json:"sunday" yaml:"sunday"`
}

// IsHoliday reports whether an observed holiday falls on the day.
func (d DayInfo) IsHoliday() bool {
	return d.Holiday != nil
}

// Lookup matches a date against the observed holidays and the carnival
// window by exact calendar-day equality. Dates outside the calendar's
// year only report the weekday.
func (yc YearCalendar) Lookup(date civil.Date) DayInfo {
	info := DayInfo{
		Date:         date,
		Weekday:      DayName(date.Weekday()),
		Carnival:     yc.Carnival.Contains(date),
		AshWednesday: yc.Carnival.AshWednesday == date,
		Sunday:       date.Weekday() == time.Sunday,
	}

	for i := range yc.Holidays {
		if yc.Holidays[i].Date == date {
			h := yc.Holidays[i]
			info.Holiday = &h
			break
		}
	}

	return info
}

// HolidaysInMonth returns the holidays observed during month, in catalog
// order.
func (yc YearCalendar) HolidaysInMonth(month time.Month) []ShiftedHoliday {
	var out []ShiftedHoliday
	for _, h := range yc.Holidays {
		if h.Date.Year == yc.Year && h.Date.Month == month {
			out = append(out, h)
		}
	}
	return out
}

// LookupDate computes the calendar of the date's year and looks the date up.
func LookupDate(date civil.Date) DayInfo {
	return ForYear(date.Year).Lookup(date)
}
