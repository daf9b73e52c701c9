package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var (
	dayNames      = [...]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}
	dayNamesShort = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
	dayAbbrev     = [...]string{"dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb."}
	monthNames    = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
	monthAbbrev   = [...]string{"ene.", "feb.", "mar.", "abr.", "may.", "jun.", "jul.", "ago.", "sept.", "oct.", "nov.", "dic."}
)

// DayName returns the Spanish day of week name (Domingo, Lunes, etc.)
func DayName(wd time.Weekday) string {
	return dayNames[wd]
}

// DayNameShort returns the three letter header used in month grids.
func DayNameShort(wd time.Weekday) string {
	return dayNamesShort[wd]
}

// MonthName returns the lower-case Spanish month name.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// FormatShortDate formats a date the way es-ES abbreviates it with a
// weekday, e.g. "mié., 19 mar.".
func FormatShortDate(d civil.Date) string {
	return fmt.Sprintf("%s, %d %s", dayAbbrev[d.Weekday()], d.Day, monthAbbrev[d.Month-1])
}

// FormatNumericDate formats a date as d/m/yyyy without padding.
func FormatNumericDate(d civil.Date) string {
	return fmt.Sprintf("%d/%d/%d", d.Day, int(d.Month), d.Year)
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(dateStr string) (civil.Date, error) {
	d, err := civil.ParseDate(dateStr)
	if err != nil {
		return civil.Date{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return d, nil
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(d civil.Date) string {
	return d.String()
}

// FormatCompactDate formats a date as YYYYMMDD.
func FormatCompactDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// ToTime returns midnight UTC of the date. Libraries that only speak
// time.Time receive dates in this form.
func ToTime(d civil.Date) time.Time {
	return d.In(time.UTC)
}
