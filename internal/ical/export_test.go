package ical

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/festivos-api/internal/calendar"
	"github.com/zapponejosh/festivos-api/internal/config"
)

func fixedExporter() *Exporter {
	e := NewExporter()
	e.Now = func() time.Time {
		return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.FixedZone("COT", -5*3600))
	}
	return e
}

func TestExport_SingleEvent(t *testing.T) {
	out := fixedExporter().Export(2024, []Event{{
		Name:         "Año Nuevo",
		Date:         civil.Date{Year: 2024, Month: time.January, Day: 1},
		Description:  "Feriado Cívico",
		OriginalDate: civil.Date{Year: 2024, Month: time.January, Day: 1},
	}})

	want := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//AlejandroGarcia//ColombianHolidayCalendar//NONSGML v1.0//ES",
		"CALSCALE:GREGORIAN",
		"X-WR-CALNAME:Feriados Colombia 2024",
		"BEGIN:VEVENT",
		"UID:20240101-AoNuevo@colombian-holidays.agarc.dev",
		"DTSTAMP:20240102T080405Z",
		"DTSTART;VALUE=DATE:20240101",
		"DTEND;VALUE=DATE:20240102",
		"SUMMARY:Año Nuevo",
		"DESCRIPTION:Feriado Cívico",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	assert.Equal(t, want, out)
}

func TestExport_MovedEvent(t *testing.T) {
	out := fixedExporter().Export(2025, []Event{{
		Name:         "San José",
		Date:         civil.Date{Year: 2025, Month: time.March, Day: 24},
		OriginalDate: civil.Date{Year: 2025, Month: time.March, Day: 19},
		Moved:        true,
		Description:  "Religioso (Católico)",
	}})

	assert.Contains(t, out, "\r\nDESCRIPTION:Religioso (Católico) (Originalmente: mié., 19 mar.). Movido por Ley Emiliani.\r\n")
	assert.Contains(t, out, "\r\nDTSTART;VALUE=DATE:20250324\r\n")
	assert.Contains(t, out, "\r\nDTEND;VALUE=DATE:20250325\r\n")
	assert.Contains(t, out, "\r\nUID:20250324-SanJos@colombian-holidays.agarc.dev\r\n")
}

func TestExport_MultipleEvents(t *testing.T) {
	out := fixedExporter().Export(2024, []Event{
		{Name: "Año Nuevo", Date: civil.Date{Year: 2024, Month: time.January, Day: 1}, Description: "Feriado Cívico"},
		{Name: "Día del Trabajo", Date: civil.Date{Year: 2024, Month: time.May, Day: 1}, Description: "Conmemoración"},
	})

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 2, strings.Count(out, "END:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Año Nuevo")
	assert.Contains(t, out, "SUMMARY:Día del Trabajo")
	assert.Less(t, strings.Index(out, "SUMMARY:Año Nuevo"), strings.Index(out, "SUMMARY:Día del Trabajo"))
}

func TestExport_NoEvents(t *testing.T) {
	out := fixedExporter().Export(2030, nil)

	assert.NotContains(t, out, "BEGIN:VEVENT")
	assert.True(t, strings.HasSuffix(out, "X-WR-CALNAME:Feriados Colombia 2030\r\nEND:VCALENDAR\r\n"))
}

func TestExport_LineEndings(t *testing.T) {
	out := fixedExporter().Export(2024, YearEvents(2024))

	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"), "every line must end in CRLF")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
}

func TestExport_EscapesNewlines(t *testing.T) {
	out := fixedExporter().Export(2024, []Event{{
		Name:        "Prueba",
		Date:        civil.Date{Year: 2024, Month: time.June, Day: 3},
		Description: "Línea uno\nLínea dos, con coma",
	}})

	assert.Contains(t, out, "DESCRIPTION:Línea uno\\nLínea dos, con coma\r\n")
}

func TestExport_CustomIdentity(t *testing.T) {
	e := &Exporter{
		Vendor:  "Acme",
		Product: "Festivos",
		Domain:  "example.com",
		Label:   "Festivos",
		Now:     func() time.Time { return time.Unix(0, 0) },
	}
	out := e.Export(2024, []Event{{Name: "Navidad", Date: civil.Date{Year: 2024, Month: time.December, Day: 25}}})

	assert.Contains(t, out, "PRODID:-//Acme//Festivos//NONSGML v1.0//ES\r\n")
	assert.Contains(t, out, "X-WR-CALNAME:Festivos 2024\r\n")
	assert.Contains(t, out, "UID:20241225-Navidad@example.com\r\n")
	assert.Contains(t, out, "DTSTAMP:19700101T000000Z\r\n")
}

func TestNewExporterFromConfig(t *testing.T) {
	e := NewExporterFromConfig(&config.Config{
		ICSVendor:       "Acme",
		ICSDomain:       "example.com",
		ICSCalendarName: "Festivos",
	})

	assert.Equal(t, "Acme", e.Vendor)
	assert.Equal(t, DefaultProduct, e.Product)
	assert.Equal(t, "example.com", e.Domain)
	assert.Equal(t, "Festivos", e.Label)
	require.NotNil(t, e.Now)
}

func TestExporter_Write(t *testing.T) {
	e := fixedExporter()
	events := YearEvents(2024)

	var buf bytes.Buffer
	require.NoError(t, e.Write(&buf, 2024, events))
	assert.Equal(t, e.Export(2024, events), buf.String())
}

func TestYearEvents(t *testing.T) {
	events := YearEvents(2024)
	require.Len(t, events, calendar.CatalogSize+5)

	tail := events[calendar.CatalogSize:]
	for i := 0; i < 4; i++ {
		assert.Equal(t, calendar.CarnivalName, tail[i].Name)
		assert.False(t, tail[i].Moved)
	}
	assert.Equal(t, calendar.AshWednesdayName, tail[4].Name)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 14}, tail[4].Date)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 10}, tail[0].Date)
}

func TestHolidayEvents(t *testing.T) {
	events := HolidayEvents(calendar.ApplyLeyEmiliani(calendar.BuildHolidays(2025)))

	var sanJose *Event
	for i := range events {
		if events[i].Name == calendar.SaintJoseph {
			sanJose = &events[i]
		}
	}
	require.NotNil(t, sanJose)
	assert.True(t, sanJose.Moved)
	assert.Equal(t, "Religioso (Católico)", sanJose.Description)
	assert.Equal(t, "2025-03-24", sanJose.Date.String())
	assert.Equal(t, "2025-03-19", sanJose.OriginalDate.String())
}
