package calendar

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/rickar/cal/v2"
)

// emilianiObserved moves a holiday that does not fall on a Monday to the
// following Monday.
var emilianiObserved = []cal.AltDay{
	{Day: time.Tuesday, Offset: 6},
	{Day: time.Wednesday, Offset: 5},
	{Day: time.Thursday, Offset: 4},
	{Day: time.Friday, Offset: 3},
	{Day: time.Saturday, Offset: 2},
	{Day: time.Sunday, Offset: 1},
}

// calcDayOfMonth and calcEasterOffset place holidays at midnight UTC.
// The stock cal.CalcDayOfMonth and cal.CalcEasterOffset use
// cal.DefaultLoc, where a midnight skipped by a clock change lands on the
// previous day.
func calcDayOfMonth(h *cal.Holiday, year int) time.Time {
	return ToTime(civil.Date{Year: year, Month: h.Month, Day: h.Day})
}

func calcEasterOffset(h *cal.Holiday, year int) time.Time {
	return ToTime(CalculateEaster(year).AddDays(h.Offset))
}

// holidayRules expresses the catalog as rickar/cal rules. The order
// matches BuildHolidays.
func holidayRules() []*cal.Holiday {
	fixed := func(name string, month time.Month, day int) *cal.Holiday {
		return &cal.Holiday{Name: name, Type: cal.ObservancePublic, Month: month, Day: day, Func: calcDayOfMonth}
	}
	easter := func(name string, offset int) *cal.Holiday {
		return &cal.Holiday{Name: name, Type: cal.ObservancePublic, Offset: offset, Func: calcEasterOffset}
	}
	movable := func(h *cal.Holiday) *cal.Holiday {
		h.Observed = emilianiObserved
		return h
	}

	return []*cal.Holiday{
		fixed(NewYear, time.January, 1),
		fixed(LaborDay, time.May, 1),
		fixed(IndependenceDay, time.July, 20),
		fixed(BattleOfBoyaca, time.August, 7),
		fixed(ImmaculateConception, time.December, 8),
		fixed(Christmas, time.December, 25),
		easter(HolyThursday, HolyThursdayOffset),
		easter(GoodFriday, GoodFridayOffset),

		movable(fixed(Epiphany, time.January, 6)),
		movable(fixed(SaintJoseph, time.March, 19)),
		movable(easter(Ascension, AscensionOffset)),
		movable(easter(CorpusChristi, CorpusChristiOffset)),
		movable(easter(SacredHeart, SacredHeartOffset)),
		movable(fixed(SaintsPeterAndPaul, time.June, 29)),
		movable(fixed(Assumption, time.August, 15)),
		movable(fixed(ColumbusDay, time.October, 12)),
		movable(fixed(AllSaints, time.November, 1)),
		movable(fixed(CartagenaIndependence, time.November, 11)),
	}
}

// BusinessCalendar answers workday questions for Colombia. Holidays are
// matched on their observed date. It is safe for concurrent reads once
// built.
type BusinessCalendar struct {
	cal   *cal.BusinessCalendar
	rules []*cal.Holiday
}

// NewBusinessCalendar registers the holiday catalog with a Monday to
// Friday business calendar.
func NewBusinessCalendar() *BusinessCalendar {
	rules := holidayRules()
	c := cal.NewBusinessCalendar()
	c.Locations = []*time.Location{time.UTC}
	c.AddHoliday(rules...)
	return &BusinessCalendar{cal: c, rules: rules}
}

// IsHoliday returns the name of the holiday observed on d. Rules and
// queries both use midnight UTC, so the host time zone never shifts a day.
func (b *BusinessCalendar) IsHoliday(d civil.Date) (string, bool) {
	_, observed, h := b.cal.IsHoliday(ToTime(d))
	if !observed || h == nil {
		return "", false
	}
	return h.Name, true
}

// IsBusinessDay reports whether d is a weekday with no observed holiday.
func (b *BusinessCalendar) IsBusinessDay(d civil.Date) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	_, holiday := b.IsHoliday(d)
	return !holiday
}

// BusinessDaysBetween counts business days from start to end, both
// included. It returns 0 when end is before start.
func (b *BusinessCalendar) BusinessDaysBetween(start, end civil.Date) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if b.IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// AddBusinessDays moves n business days away from start. Negative n
// moves backwards; zero returns start unchanged even if it is not a
// business day.
func (b *BusinessCalendar) AddBusinessDays(start civil.Date, n int) civil.Date {
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	d := start
	for n > 0 {
		d = d.AddDays(step)
		if b.IsBusinessDay(d) {
			n--
		}
	}
	return d
}

// ObservedDates returns the observed date of every catalog holiday for a
// year as computed by the rule set, keyed by holiday name.
func (b *BusinessCalendar) ObservedDates(year int) map[string]civil.Date {
	out := make(map[string]civil.Date, len(b.rules))
	for _, h := range b.rules {
		_, observed := h.Calc(year)
		out[h.Name] = civil.DateOf(observed)
	}
	return out
}
