// Package calendar computes the Colombian public holiday calendar.
//
// Every function in this package is a pure transform of its arguments.
// Nothing is cached between calls; asking twice for the same year
// recomputes and yields identical values.
package calendar

import (
	"time"

	"cloud.google.com/go/civil"
)

// Offsets in days from Easter Sunday.
const (
	AshWednesdayOffset  = -46
	HolyThursdayOffset  = -3
	GoodFridayOffset    = -2
	AscensionOffset     = 39
	CorpusChristiOffset = 60
	SacredHeartOffset   = 68
)

// CalculateEaster calculates the date of Easter Sunday for a given year
// using the Anonymous (Meeus/Jones/Butcher) Gregorian algorithm.
//
// The result is only meaningful for years of the Gregorian calendar
// (1583 onwards). Earlier years are not rejected, but callers must treat
// them as undefined.
func CalculateEaster(year int) civil.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return civil.Date{Year: year, Month: time.Month(month), Day: day}
}

// EasterOffsets holds the feasts that sit a fixed number of days from
// Easter Sunday.
type EasterOffsets struct {
	Easter        civil.Date `json:"easter" yaml:"easter"`
	AshWednesday  civil.Date `json:"ash_wednesday" yaml:"ash_wednesday"`
	HolyThursday  civil.Date `json:"holy_thursday" yaml:"holy_thursday"`
	GoodFriday    civil.Date `json:"good_friday" yaml:"good_friday"`
	Ascension     civil.Date `json:"ascension" yaml:"ascension"`
	CorpusChristi civil.Date `json:"corpus_christi" yaml:"corpus_christi"`
	SacredHeart   civil.Date `json:"sacred_heart" yaml:"sacred_heart"`
}

// DeriveEasterOffsets computes Easter and its dependent feasts for a year.
func DeriveEasterOffsets(year int) EasterOffsets {
	easter := CalculateEaster(year)
	return EasterOffsets{
		Easter:        easter,
		AshWednesday:  easter.AddDays(AshWednesdayOffset),
		HolyThursday:  easter.AddDays(HolyThursdayOffset),
		GoodFriday:    easter.AddDays(GoodFridayOffset),
		Ascension:     easter.AddDays(AscensionOffset),
		CorpusChristi: easter.AddDays(CorpusChristiOffset),
		SacredHeart:   easter.AddDays(SacredHeartOffset),
	}
}

// CalculateAshWednesday calculates Ash Wednesday for a given year.
// Ash Wednesday is 46 days before Easter (40 days of Lent + 6 Sundays).
func CalculateAshWednesday(year int) civil.Date {
	return CalculateEaster(year).AddDays(AshWednesdayOffset)
}

// CarnivalWindow is the four-day carnival that ends the day before Ash
// Wednesday. Days runs Saturday, Sunday, Monday, Tuesday.
type CarnivalWindow struct {
	AshWednesday civil.Date    `json:"ash_wednesday" yaml:"ash_wednesday"`
	Days         [4]civil.Date `json:"carnival_days" yaml:"carnival_days"`
}

// DeriveCarnival calculates the carnival days and Ash Wednesday for a year.
func DeriveCarnival(year int) CarnivalWindow {
	ash := CalculateAshWednesday(year)
	return CarnivalWindow{
		AshWednesday: ash,
		Days: [4]civil.Date{
			ash.AddDays(-4),
			ash.AddDays(-3),
			ash.AddDays(-2),
			ash.AddDays(-1),
		},
	}
}

// Contains reports whether d is one of the four carnival days.
func (w CarnivalWindow) Contains(d civil.Date) bool {
	for _, day := range w.Days {
		if day == d {
			return true
		}
	}
	return false
}
