// Package view holds the state of the calendar browser and renders it
// into month grids. Commands are pure: they take a state and return the
// next one.
package view

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Mode selects between the twelve-month and the single-month view.
type Mode string

const (
	ModeAnnual  Mode = "annual"
	ModeMonthly Mode = "monthly"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAnnual, ModeMonthly:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid view mode %q: must be %q or %q", s, ModeAnnual, ModeMonthly)
	}
}

// State is what the calendar browser is showing. Month only matters in
// monthly mode but is kept in annual mode so switching back restores it.
type State struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Mode  Mode       `json:"mode"`
}

// Initial returns the state shown on first load: the annual view of
// today's year, remembering today's month.
func Initial(today civil.Date) State {
	return State{Year: today.Year, Month: today.Month, Mode: ModeAnnual}
}

// NextMonth advances one month, rolling into January of the next year.
func NextMonth(s State) State {
	if s.Month == time.December {
		s.Month = time.January
		s.Year++
		return s
	}
	s.Month++
	return s
}

// PrevMonth goes back one month, rolling into December of the previous
// year.
func PrevMonth(s State) State {
	if s.Month == time.January {
		s.Month = time.December
		s.Year--
		return s
	}
	s.Month--
	return s
}

// SelectYear changes the year and keeps the month and mode.
func SelectYear(s State, year int) State {
	s.Year = year
	return s
}

// SelectMode changes the mode.
func SelectMode(s State, mode Mode) State {
	s.Mode = mode
	return s
}

// GoToday jumps to today's month in the monthly view.
func GoToday(_ State, today civil.Date) State {
	return State{Year: today.Year, Month: today.Month, Mode: ModeMonthly}
}

// YearOptions returns the years offered by the year selector: five years
// before base through ten years after.
func YearOptions(base int) []int {
	years := make([]int, 0, 16)
	for y := base - 5; y <= base+10; y++ {
		years = append(years, y)
	}
	return years
}
