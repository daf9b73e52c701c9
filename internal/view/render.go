package view

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zapponejosh/festivos-api/internal/calendar"
)

// Cell classes.
const (
	ClassSunday       = "sunday"
	ClassAshWednesday = "ash-wednesday"
	ClassCarnival     = "carnival"
	ClassHoliday      = "holiday"
	ClassEmiliani     = "emiliani-holiday"
	ClassToday        = "today"
)

// DayCell is one square of a month grid. Empty cells pad the first week
// so that day 1 sits under its weekday.
type DayCell struct {
	Date    civil.Date `json:"date"`
	Day     int        `json:"day,omitempty"`
	Empty   bool       `json:"empty,omitempty"`
	Classes []string   `json:"classes,omitempty"`
	Title   string     `json:"title,omitempty"`
}

// HasClass reports whether the cell carries class.
func (c DayCell) HasClass(class string) bool {
	for _, cl := range c.Classes {
		if cl == class {
			return true
		}
	}
	return false
}

// MonthGrid is a Sunday-first month layout.
type MonthGrid struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Name    string     `json:"name"`
	Headers []string   `json:"headers"`
	Cells   []DayCell  `json:"cells"`
}

// Page is a rendered state.
type Page struct {
	State       State       `json:"state"`
	Title       string      `json:"title"`
	Navigation  bool        `json:"navigation"`
	YearOptions []int       `json:"year_options"`
	Months      []MonthGrid `json:"months"`
}

// Render builds the page for a state. today is highlighted wherever it
// appears.
func Render(s State, today civil.Date) Page {
	yc := calendar.ForYear(s.Year)
	title := cases.Title(language.Spanish)

	page := Page{
		State:       s,
		YearOptions: YearOptions(today.Year),
	}

	if s.Mode == ModeAnnual {
		page.Title = fmt.Sprintf("%d", s.Year)
		for m := time.January; m <= time.December; m++ {
			grid := buildGrid(yc, m, today, calendar.DayNameShort)
			grid.Name = title.String(calendar.MonthName(m))
			page.Months = append(page.Months, grid)
		}
		return page
	}

	grid := buildGrid(yc, s.Month, today, calendar.DayName)
	grid.Name = title.String(calendar.MonthName(s.Month))
	page.Title = fmt.Sprintf("%s de %d", grid.Name, s.Year)
	page.Navigation = true
	page.Months = []MonthGrid{grid}
	return page
}

func buildGrid(yc calendar.YearCalendar, month time.Month, today civil.Date, header func(time.Weekday) string) MonthGrid {
	grid := MonthGrid{Year: yc.Year, Month: month}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		grid.Headers = append(grid.Headers, header(wd))
	}

	first := civil.Date{Year: yc.Year, Month: month, Day: 1}
	for i := 0; i < int(first.Weekday()); i++ {
		grid.Cells = append(grid.Cells, DayCell{Empty: true})
	}
	for d := first; d.Month == month; d = d.AddDays(1) {
		grid.Cells = append(grid.Cells, Cell(yc.Lookup(d), today))
	}
	return grid
}

// Cell styles a single day. Carnival and Ash Wednesday styling wins over
// the holiday classes; a holiday on those days is only added to the
// title.
func Cell(info calendar.DayInfo, today civil.Date) DayCell {
	c := DayCell{Date: info.Date, Day: info.Date.Day}

	if info.Sunday {
		c.Classes = append(c.Classes, ClassSunday)
	}
	if info.AshWednesday {
		c.Classes = append(c.Classes, ClassAshWednesday)
		c.Title = calendar.AshWednesdayName
	}
	if info.Carnival {
		c.Classes = append(c.Classes, ClassCarnival)
		c.Title = calendar.CarnivalName
	}

	if info.IsHoliday() {
		h := info.Holiday
		switch {
		case info.Carnival || info.AshWednesday:
			c.Title += " / " + h.Name
			if h.Moved {
				c.Title += movedFrom(h)
			}
		case h.Moved:
			c.Classes = append(c.Classes, ClassEmiliani)
			c.Title = h.Name + movedFrom(h)
		default:
			c.Classes = append(c.Classes, ClassHoliday)
			c.Title = h.Name
		}
	}

	if info.Date == today {
		c.Classes = append(c.Classes, ClassToday)
	}
	return c
}

func movedFrom(h *calendar.ShiftedHoliday) string {
	return " (Movido desde: " + calendar.FormatNumericDate(h.OriginalDate) + ")"
}
