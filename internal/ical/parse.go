package ical

import (
	"fmt"
	"io"

	"cloud.google.com/go/civil"
	ics "github.com/arran4/golang-ical"
)

// ImportedEvent is an all-day event read from an iCalendar document.
type ImportedEvent struct {
	UID         string     `json:"uid" yaml:"uid"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Start       civil.Date `json:"start" yaml:"start"`
	End         civil.Date `json:"end" yaml:"end"`
}

// Parse reads every VEVENT of an iCalendar document. Events must carry an
// all-day DTSTART; a missing DTEND defaults to the day after the start.
func Parse(r io.Reader) ([]ImportedEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var events []ImportedEvent
	for _, ev := range cal.Events() {
		start, err := ev.GetAllDayStartAt()
		if err != nil {
			return nil, fmt.Errorf("event %q start: %w", ev.Id(), err)
		}

		imported := ImportedEvent{
			UID:         ev.Id(),
			Name:        propertyValue(ev, ics.ComponentPropertySummary),
			Description: propertyValue(ev, ics.ComponentPropertyDescription),
			Start:       civil.DateOf(start),
		}

		if ev.GetProperty(ics.ComponentPropertyDtEnd) == nil {
			imported.End = imported.Start.AddDays(1)
		} else {
			end, err := ev.GetAllDayEndAt()
			if err != nil {
				return nil, fmt.Errorf("event %q end: %w", ev.Id(), err)
			}
			imported.End = civil.DateOf(end)
		}

		events = append(events, imported)
	}

	return events, nil
}

func propertyValue(ev *ics.VEvent, prop ics.ComponentProperty) string {
	p := ev.GetProperty(prop)
	if p == nil {
		return ""
	}
	return p.Value
}
