package api

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/festivos-api/internal/calendar"
	"github.com/zapponejosh/festivos-api/internal/config"
	"github.com/zapponejosh/festivos-api/internal/ical"
	"github.com/zapponejosh/festivos-api/internal/logger"
	"github.com/zapponejosh/festivos-api/internal/view"
)

// Years accepted by the API. The calculation itself has no limits, but
// the Easter algorithm is only meaningful for Gregorian years and ISO
// dates cannot hold more than four digits.
const (
	MinYear = 1583
	MaxYear = 9999
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	cfg      *config.Config
	exporter *ical.Exporter
	business *calendar.BusinessCalendar
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance.
// Request logging goes through the logger carried by the request context.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{
		cfg:      cfg,
		exporter: ical.NewExporterFromConfig(cfg),
		business: calendar.NewBusinessCalendar(),
		now:      time.Now,
	}
}

// HolidaysResponse is the payload of the holiday list endpoints.
type HolidaysResponse struct {
	Year     int                       `json:"year"`
	Month    time.Month                `json:"month,omitempty"`
	Count    int                       `json:"count"`
	Holidays []calendar.ShiftedHoliday `json:"holidays"`
}

// RawHolidaysResponse lists the catalog before Ley Emiliani is applied.
type RawHolidaysResponse struct {
	Year     int                `json:"year"`
	Count    int                `json:"count"`
	Holidays []calendar.Holiday `json:"holidays"`
}

// DateResponse describes a single day.
type DateResponse struct {
	calendar.DayInfo
	BusinessDay bool `json:"business_day"`
}

// BusinessDaysResponse is the payload of the business day counter.
type BusinessDaysResponse struct {
	Start        civil.Date `json:"start"`
	End          civil.Date `json:"end"`
	BusinessDays int        `json:"business_days"`
}

// AddBusinessDaysResponse is the date n business days away from Start.
type AddBusinessDaysResponse struct {
	Start civil.Date `json:"start"`
	Days  int        `json:"days"`
	Date  civil.Date `json:"date"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetHolidays handles GET /api/v1/holidays/{year}[?raw=true]
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	if raw, _ := strconv.ParseBool(r.URL.Query().Get("raw")); raw {
		holidays := calendar.BuildHolidays(year)
		WriteSuccess(w, RawHolidaysResponse{Year: year, Count: len(holidays), Holidays: holidays})
		return
	}

	holidays := calendar.ApplyLeyEmiliani(calendar.BuildHolidays(year))
	WriteSuccess(w, HolidaysResponse{Year: year, Count: len(holidays), Holidays: holidays})
}

// GetMonthHolidays handles GET /api/v1/holidays/{year}/month/{month}
func (h *Handlers) GetMonthHolidays(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	monthStr := chi.URLParam(r, "month")
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s. Use 1-12", monthStr))
		return
	}

	holidays := calendar.ForYear(year).HolidaysInMonth(time.Month(month))
	if holidays == nil {
		holidays = []calendar.ShiftedHoliday{}
	}
	WriteSuccess(w, HolidaysResponse{
		Year:     year,
		Month:    time.Month(month),
		Count:    len(holidays),
		Holidays: holidays,
	})
}

// GetEaster handles GET /api/v1/easter/{year}
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, calendar.DeriveEasterOffsets(year))
}

// GetCarnival handles GET /api/v1/carnival/{year}
func (h *Handlers) GetCarnival(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, calendar.DeriveCarnival(year))
}

// GetCalendarFile handles GET /api/v1/calendar/{year}.ics
func (h *Handlers) GetCalendarFile(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, year, ical.YearEvents(year)); err != nil {
		logger.Error(r.Context(), "failed to export calendar", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to export calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=festivos-colombia-%d.ics", year))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn(r.Context(), "failed to send calendar",
			slog.Int("year", year),
			slog.Any("error", err))
	}
}

// GetDate handles GET /api/v1/dates/{date}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	if !validYear(date.Year) {
		WriteBadRequest(w, yearRangeMessage(date.Year))
		return
	}

	WriteSuccess(w, DateResponse{
		DayInfo:     calendar.LookupDate(date),
		BusinessDay: h.business.IsBusinessDay(date),
	})
}

// GetBusinessDays handles GET /api/v1/business-days?start=YYYY-MM-DD&end=YYYY-MM-DD
// and GET /api/v1/business-days?start=YYYY-MM-DD&add=N
func (h *Handlers) GetBusinessDays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	startStr := q.Get("start")
	endStr := q.Get("end")
	addStr := q.Get("add")

	if startStr == "" || (endStr == "") == (addStr == "") {
		WriteBadRequest(w, "A start date and exactly one of end or add are required")
		return
	}

	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}
	if !validYear(start.Year) {
		WriteBadRequest(w, yearRangeMessage(start.Year))
		return
	}

	if addStr != "" {
		h.addBusinessDays(w, start, addStr)
		return
	}

	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}
	if !validYear(end.Year) {
		WriteBadRequest(w, fmt.Sprintf("Dates must fall between years %d and %d", MinYear, MaxYear))
		return
	}

	// Limit range to prevent abuse
	if days := end.DaysSince(start) + 1; days > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	WriteSuccess(w, BusinessDaysResponse{
		Start:        start,
		End:          end,
		BusinessDays: h.business.BusinessDaysBetween(start, end),
	})
}

func (h *Handlers) addBusinessDays(w http.ResponseWriter, start civil.Date, addStr string) {
	n, err := strconv.Atoi(addStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid add: %s. Use a whole number of days", addStr))
		return
	}
	if n > h.cfg.MaxRangeDays || -n > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Cannot add more than %d business days", h.cfg.MaxRangeDays))
		return
	}

	date := h.business.AddBusinessDays(start, n)
	if !validYear(date.Year) {
		WriteBadRequest(w, yearRangeMessage(date.Year))
		return
	}

	WriteSuccess(w, AddBusinessDaysResponse{
		Start: start,
		Days:  n,
		Date:  date,
	})
}

// GetView handles GET /api/v1/view?year=&month=&mode=&cmd=
//
// The query describes the current state; cmd (next, prev, today) is
// applied to it before rendering. Missing fields fall back to the
// initial state for today.
func (h *Handlers) GetView(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	today := civil.DateOf(h.now())
	state := view.Initial(today)

	if s := q.Get("year"); s != "" {
		year, err := parseYear(s)
		if err != nil {
			WriteBadRequest(w, err.Error())
			return
		}
		state = view.SelectYear(state, year)
	}

	if s := q.Get("month"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil || month < 1 || month > 12 {
			WriteBadRequest(w, fmt.Sprintf("Invalid month: %s. Use 1-12", s))
			return
		}
		state.Month = time.Month(month)
	}

	if s := q.Get("mode"); s != "" {
		mode, err := view.ParseMode(s)
		if err != nil {
			WriteBadRequest(w, err.Error())
			return
		}
		state = view.SelectMode(state, mode)
	}

	switch cmd := q.Get("cmd"); cmd {
	case "":
	case "next":
		state = view.NextMonth(state)
	case "prev":
		state = view.PrevMonth(state)
	case "today":
		state = view.GoToday(state, today)
	default:
		WriteBadRequest(w, fmt.Sprintf("Invalid command: %s. Use next, prev or today", cmd))
		return
	}

	if !validYear(state.Year) {
		WriteBadRequest(w, yearRangeMessage(state.Year))
		return
	}

	logger.Debug(r.Context(), "rendering view",
		slog.Int("year", state.Year),
		slog.Int("month", int(state.Month)),
		slog.String("mode", string(state.Mode)))

	WriteSuccess(w, view.Render(state, today))
}

// yearParam reads and validates the {year} path parameter, writing a 400
// response when it is unusable.
func (h *Handlers) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := parseYear(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, err.Error())
		return 0, false
	}
	return year, true
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("Invalid year: %q", s)
	}
	if !validYear(year) {
		return 0, errors.New(yearRangeMessage(year))
	}
	return year, nil
}

func validYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

func yearRangeMessage(year int) string {
	return fmt.Sprintf("Year %d out of range. Use %d-%d", year, MinYear, MaxYear)
}
