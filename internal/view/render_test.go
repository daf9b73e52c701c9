package view

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/zapponejosh/festivos-api/internal/calendar"
)

func day(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

// cellFor finds the cell of a given day of the month.
func cellFor(t *testing.T, g MonthGrid, d int) DayCell {
	t.Helper()
	for _, c := range g.Cells {
		if !c.Empty && c.Day == d {
			return c
		}
	}
	t.Fatalf("no cell for day %d in %s %d", d, g.Month, g.Year)
	return DayCell{}
}

func TestRender_MonthlyFebruary2024(t *testing.T) {
	today := day(2024, time.February, 20)
	page := Render(State{Year: 2024, Month: time.February, Mode: ModeMonthly}, today)

	if len(page.Months) != 1 {
		t.Fatalf("got %d months, want 1", len(page.Months))
	}
	if !page.Navigation {
		t.Error("monthly view should show navigation")
	}
	if page.Title != "Febrero de 2024" {
		t.Errorf("Title = %q", page.Title)
	}

	g := page.Months[0]
	if g.Headers[0] != "Domingo" || g.Headers[6] != "Sábado" {
		t.Errorf("Headers = %v", g.Headers)
	}

	leading := 0
	for _, c := range g.Cells {
		if !c.Empty {
			break
		}
		leading++
	}
	if leading != 4 {
		t.Errorf("leading empty cells = %d, want 4", leading)
	}
	if got := len(g.Cells) - leading; got != 29 {
		t.Errorf("day cells = %d, want 29", got)
	}

	for d := 10; d <= 13; d++ {
		c := cellFor(t, g, d)
		if !c.HasClass(ClassCarnival) || c.Title != calendar.CarnivalName {
			t.Errorf("Feb %d = %+v, want carnival", d, c)
		}
	}

	if diff := cmp.Diff([]string{ClassSunday, ClassCarnival}, cellFor(t, g, 11).Classes); diff != "" {
		t.Errorf("Feb 11 classes (-want +got):\n%s", diff)
	}

	ash := cellFor(t, g, 14)
	want := DayCell{
		Date:    day(2024, time.February, 14),
		Day:     14,
		Classes: []string{ClassAshWednesday},
		Title:   calendar.AshWednesdayName,
	}
	if diff := cmp.Diff(want, ash); diff != "" {
		t.Errorf("Ash Wednesday cell (-want +got):\n%s", diff)
	}

	if !cellFor(t, g, 20).HasClass(ClassToday) {
		t.Error("Feb 20 should be today")
	}
	if cellFor(t, g, 21).HasClass(ClassToday) {
		t.Error("Feb 21 should not be today")
	}
}

func TestRender_MonthlyHolidays(t *testing.T) {
	page := Render(State{Year: 2024, Month: time.March, Mode: ModeMonthly}, day(2000, time.January, 1))
	g := page.Months[0]

	tests := []struct {
		day     int
		classes []string
		title   string
	}{
		{19, nil, ""},
		{25, []string{ClassEmiliani}, "San José (Movido desde: 19/3/2024)"},
		{28, []string{ClassHoliday}, "Jueves Santo"},
		{29, []string{ClassHoliday}, "Viernes Santo"},
		{31, []string{ClassSunday}, ""},
	}

	for _, tt := range tests {
		c := cellFor(t, g, tt.day)
		if diff := cmp.Diff(tt.classes, c.Classes); diff != "" {
			t.Errorf("Mar %d classes (-want +got):\n%s", tt.day, diff)
		}
		if c.Title != tt.title {
			t.Errorf("Mar %d title = %q, want %q", tt.day, c.Title, tt.title)
		}
	}
}

func TestRender_Annual(t *testing.T) {
	page := Render(State{Year: 2024, Month: time.June, Mode: ModeAnnual}, day(2025, time.June, 1))

	if len(page.Months) != 12 {
		t.Fatalf("got %d months, want 12", len(page.Months))
	}
	if page.Navigation {
		t.Error("annual view should hide navigation")
	}
	if page.Title != "2024" {
		t.Errorf("Title = %q", page.Title)
	}

	names := make([]string, 0, 12)
	for _, g := range page.Months {
		names = append(names, g.Name)
		if g.Headers[0] != "Dom" {
			t.Errorf("%s headers = %v", g.Name, g.Headers)
		}
	}
	if names[0] != "Enero" || names[8] != "Septiembre" || names[11] != "Diciembre" {
		t.Errorf("month names = %v", names)
	}

	if diff := cmp.Diff(YearOptions(2025), page.YearOptions); diff != "" {
		t.Errorf("YearOptions (-want +got):\n%s", diff)
	}

	holidays := 0
	for _, g := range page.Months {
		for _, c := range g.Cells {
			if c.HasClass(ClassHoliday) || c.HasClass(ClassEmiliani) {
				holidays++
			}
		}
	}
	// every 2024 holiday falls on its own day outside the carnival
	if holidays != calendar.CatalogSize {
		t.Errorf("holiday cells = %d, want %d", holidays, calendar.CatalogSize)
	}
}

func TestCell_HolidayDuringCarnival(t *testing.T) {
	d := day(2030, time.March, 4)
	info := calendar.DayInfo{
		Date:     d,
		Carnival: true,
		Holiday: &calendar.ShiftedHoliday{
			Name:         calendar.SaintJoseph,
			OriginalDate: day(2030, time.February, 27),
			Date:         d,
			Moved:        true,
		},
	}

	got := Cell(info, day(2030, time.March, 4))
	want := DayCell{
		Date:    d,
		Day:     4,
		Classes: []string{ClassCarnival, ClassToday},
		Title:   "Carnaval de Barranquilla / San José (Movido desde: 27/2/2030)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cell mismatch (-want +got):\n%s", diff)
	}
}

func TestCell_FixedHolidayOnAshWednesday(t *testing.T) {
	d := day(2031, time.February, 26)
	info := calendar.DayInfo{
		Date:         d,
		AshWednesday: true,
		Holiday:      &calendar.ShiftedHoliday{Name: "Prueba", OriginalDate: d, Date: d, Fixed: true},
	}

	got := Cell(info, day(2000, time.January, 1))
	if diff := cmp.Diff([]string{ClassAshWednesday}, got.Classes); diff != "" {
		t.Errorf("classes (-want +got):\n%s", diff)
	}
	if got.Title != "Miércoles de Ceniza / Prueba" {
		t.Errorf("Title = %q", got.Title)
	}
}
