package ical

import (
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	events := YearEvents(2025)
	doc := fixedExporter().Export(2025, events)

	imported, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, imported, len(events))

	for i, ev := range events {
		got := imported[i]
		assert.Equal(t, ev.Name, got.Name)
		assert.Equal(t, ev.Date, got.Start, ev.Name)
		assert.Equal(t, ev.Date.AddDays(1), got.End, ev.Name)
		assert.Equal(t, UID(ev, DefaultDomain), got.UID)
		assert.Equal(t, Description(ev), got.Description)
	}
}

func TestParse_UnescapesDescription(t *testing.T) {
	doc := fixedExporter().Export(2024, []Event{{
		Name:        "Prueba",
		Date:        civil.Date{Year: 2024, Month: time.June, Day: 3},
		Description: "uno\ndos",
	}})

	imported, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "uno\ndos", imported[0].Description)
}

func TestParse_MissingEnd(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
		"BEGIN:VEVENT",
		"UID:abc",
		"DTSTART;VALUE=DATE:20241225",
		"SUMMARY:Navidad",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	imported, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "abc", imported[0].UID)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.December, Day: 26}, imported[0].End)
	assert.Empty(t, imported[0].Description)
}

func TestParse_MissingStart(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:abc",
		"SUMMARY:Sin fecha",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `event "abc" start`)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("BEGIN:VEVENT\r\nEND:VEVENT\r\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse calendar")
}
