// Package ical converts the holiday calendar into iCalendar files and
// reads such files back.
package ical

import (
	"cloud.google.com/go/civil"

	"github.com/zapponejosh/festivos-api/internal/calendar"
)

// Descriptions of the non-holiday observances included in a year export.
const (
	CarnivalDescription     = "Celebración cultural"
	AshWednesdayDescription = "Inicio de la Cuaresma"
)

// Event is one all-day entry of an exported calendar.
type Event struct {
	Name         string
	Date         civil.Date
	Description  string
	OriginalDate civil.Date
	Moved        bool
}

// HolidayEvents turns observed holidays into events described by their
// holiday type.
func HolidayEvents(holidays []calendar.ShiftedHoliday) []Event {
	events := make([]Event, 0, len(holidays))
	for _, h := range holidays {
		events = append(events, Event{
			Name:         h.Name,
			Date:         h.Date,
			Description:  h.Type.Label(),
			OriginalDate: h.OriginalDate,
			Moved:        h.Moved,
		})
	}
	return events
}

// CarnivalEvents returns the four carnival days followed by Ash Wednesday.
func CarnivalEvents(w calendar.CarnivalWindow) []Event {
	events := make([]Event, 0, len(w.Days)+1)
	for _, d := range w.Days {
		events = append(events, Event{
			Name:         calendar.CarnivalName,
			Date:         d,
			Description:  CarnivalDescription,
			OriginalDate: d,
		})
	}
	return append(events, Event{
		Name:         calendar.AshWednesdayName,
		Date:         w.AshWednesday,
		Description:  AshWednesdayDescription,
		OriginalDate: w.AshWednesday,
	})
}

// YearEvents returns every event of a year: observed holidays first,
// then the carnival observances. A holiday that shares a day with the
// carnival yields two events.
func YearEvents(year int) []Event {
	yc := calendar.ForYear(year)
	return append(HolidayEvents(yc.Holidays), CarnivalEvents(yc.Carnival)...)
}
