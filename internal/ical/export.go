package ical

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/zapponejosh/festivos-api/internal/calendar"
	"github.com/zapponejosh/festivos-api/internal/config"
)

// Defaults used when an Exporter field is empty.
const (
	DefaultVendor  = "AlejandroGarcia"
	DefaultProduct = "ColombianHolidayCalendar"
	DefaultDomain  = "colombian-holidays.agarc.dev"
	DefaultLabel   = "Feriados Colombia"
)

const crlf = "\r\n"

var uidUnsafe = regexp.MustCompile(`[^A-Za-z0-9]`)

// Exporter writes events as an iCalendar document.
//
// The output is written line by line rather than through an iCalendar
// encoder: text values keep commas and semicolons unescaped and long
// lines are not folded, so the document matches the published format
// byte for byte.
type Exporter struct {
	Vendor  string
	Product string
	Domain  string
	Label   string

	// Now stamps DTSTAMP. Defaults to time.Now.
	Now func() time.Time
}

// NewExporter creates an exporter with the default identity.
func NewExporter() *Exporter {
	return &Exporter{
		Vendor:  DefaultVendor,
		Product: DefaultProduct,
		Domain:  DefaultDomain,
		Label:   DefaultLabel,
		Now:     time.Now,
	}
}

// NewExporterFromConfig creates an exporter with the ICS_* identity of
// cfg. Empty fields fall back to the defaults.
func NewExporterFromConfig(cfg *config.Config) *Exporter {
	e := NewExporter()
	e.Vendor = or(cfg.ICSVendor, DefaultVendor)
	e.Product = or(cfg.ICSProduct, DefaultProduct)
	e.Domain = or(cfg.ICSDomain, DefaultDomain)
	e.Label = or(cfg.ICSCalendarName, DefaultLabel)
	return e
}

// Export renders the calendar for year. All events share one DTSTAMP.
func (e *Exporter) Export(year int, events []Event) string {
	var b strings.Builder
	e.write(&b, year, events)
	return b.String()
}

// Write writes the rendered calendar to w.
func (e *Exporter) Write(w io.Writer, year int, events []Event) error {
	if _, err := io.WriteString(w, e.Export(year, events)); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

func (e *Exporter) write(b *strings.Builder, year int, events []Event) {
	line := func(format string, args ...any) {
		fmt.Fprintf(b, format, args...)
		b.WriteString(crlf)
	}

	stamp := e.now().UTC().Format("20060102T150405Z")

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//%s//%s//NONSGML v1.0//ES", or(e.Vendor, DefaultVendor), or(e.Product, DefaultProduct))
	line("CALSCALE:GREGORIAN")
	line("X-WR-CALNAME:%s %d", or(e.Label, DefaultLabel), year)

	for _, ev := range events {
		line("BEGIN:VEVENT")
		line("UID:%s", UID(ev, or(e.Domain, DefaultDomain)))
		line("DTSTAMP:%s", stamp)
		line("DTSTART;VALUE=DATE:%s", calendar.FormatCompactDate(ev.Date))
		line("DTEND;VALUE=DATE:%s", calendar.FormatCompactDate(ev.Date.AddDays(1)))
		line("SUMMARY:%s", escapeText(ev.Name))
		line("DESCRIPTION:%s", escapeText(Description(ev)))
		line("END:VEVENT")
	}

	line("END:VCALENDAR")
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// UID builds the event identifier from its date and its name with every
// character outside [A-Za-z0-9] removed.
func UID(ev Event, domain string) string {
	return calendar.FormatCompactDate(ev.Date) + "-" + uidUnsafe.ReplaceAllString(ev.Name, "") + "@" + domain
}

// Description returns the event description, noting the original day of
// holidays moved by Ley Emiliani.
func Description(ev Event) string {
	if !ev.Moved {
		return ev.Description
	}
	return fmt.Sprintf("%s (Originalmente: %s). Movido por Ley Emiliani.",
		ev.Description, calendar.FormatShortDate(ev.OriginalDate))
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}

func or(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
