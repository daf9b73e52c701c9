package calendar

import (
	"time"

	"cloud.google.com/go/civil"
)

// ShiftedHoliday is a holiday after the Ley Emiliani rule has been
// applied. Date is the observed day; OriginalDate is the catalog day.
type ShiftedHoliday struct {
	Name         string      `json:"name" yaml:"name"`
	OriginalDate civil.Date  `json:"original_date" yaml:"original_date"`
	Date         civil.Date  `json:"date" yaml:"date"`
	Moved        bool        `json:"moved" yaml:"moved"`
	Fixed        bool        `json:"fixed" yaml:"fixed"`
	Type         HolidayType `json:"type" yaml:"type"`
}

// Holiday returns the observed holiday as a catalog entry dated on the
// observed day. Feeding the result back into ApplyLeyEmiliani is a no-op.
func (s ShiftedHoliday) Holiday() Holiday {
	return Holiday{Name: s.Name, Date: s.Date, Fixed: s.Fixed, Type: s.Type}
}

// DaysUntilMonday returns how many days separate d from the next Monday,
// or 0 when d already is a Monday. Sunday yields 1.
func DaysUntilMonday(d civil.Date) int {
	return (int(time.Monday) - int(d.Weekday()) + 7) % 7
}

// ApplyLeyEmiliani moves every non-fixed holiday that does not fall on a
// Monday to the following Monday. The output has one entry per input, in
// the same order.
func ApplyLeyEmiliani(holidays []Holiday) []ShiftedHoliday {
	shifted := make([]ShiftedHoliday, 0, len(holidays))

	for _, h := range holidays {
		s := ShiftedHoliday{
			Name:         h.Name,
			OriginalDate: h.Date,
			Date:         h.Date,
			Fixed:        h.Fixed,
			Type:         h.Type,
		}

		if !h.Fixed {
			if days := DaysUntilMonday(h.Date); days != 0 {
				s.Date = h.Date.AddDays(days)
				s.Moved = true
			}
		}

		shifted = append(shifted, s)
	}

	return shifted
}
