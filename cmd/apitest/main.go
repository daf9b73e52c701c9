// Command apitest runs smoke checks against a running festivos API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HolidaysResponse is the response for /holidays/{year}
type HolidaysResponse struct {
	Year     int       `json:"year"`
	Count    int       `json:"count"`
	Holidays []Holiday `json:"holidays"`
}

type Holiday struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	OriginalDate string `json:"original_date"`
	Moved        bool   `json:"moved"`
	Fixed        bool   `json:"fixed"`
	Type         string `json:"type"`
}

// EasterResponse is the response for /easter/{year}
type EasterResponse struct {
	Easter       string `json:"easter"`
	AshWednesday string `json:"ash_wednesday"`
	GoodFriday   string `json:"good_friday"`
}

// CarnivalResponse is the response for /carnival/{year}
type CarnivalResponse struct {
	AshWednesday string   `json:"ash_wednesday"`
	Days         []string `json:"carnival_days"`
}

// DateResponse is the response for /dates/{date}
type DateResponse struct {
	Date        string   `json:"date"`
	Weekday     string   `json:"weekday"`
	Holiday     *Holiday `json:"holiday"`
	BusinessDay bool     `json:"business_day"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Festivos API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	// Run test groups
	tr.testHealth()
	tr.testEaster()
	tr.testHolidays()
	tr.testCarnival()
	tr.testDates()
	tr.testCalendarFile()
	tr.testEdgeCases()
	tr.testYearSweep()

	// Print summary
	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testEaster() {
	tr.printSection("Easter")

	known := map[int]string{
		2023: "2023-04-09",
		2024: "2024-03-31",
		2025: "2025-04-20",
	}

	for year := 2023; year <= 2025; year++ {
		var data EasterResponse
		if err := tr.getData(fmt.Sprintf("/api/v1/easter/%d", year), &data); err != nil {
			tr.recordError(fmt.Sprintf("Easter %d", year), err.Error())
			continue
		}
		tr.expect(fmt.Sprintf("Easter %d", year), data.Easter, known[year])
	}
}

func (tr *TestRunner) testHolidays() {
	tr.printSection("Holidays 2025")

	var data HolidaysResponse
	if err := tr.getData("/api/v1/holidays/2025", &data); err != nil {
		tr.recordError("Holidays 2025", err.Error())
		return
	}

	if data.Count != len(data.Holidays) {
		tr.recordError("Holidays 2025", fmt.Sprintf("count %d does not match %d entries", data.Count, len(data.Holidays)))
	} else {
		tr.recordSuccess(fmt.Sprintf("Holidays 2025: %d entries", data.Count))
	}

	for _, h := range data.Holidays {
		if h.Name == "San José" {
			tr.expect("San José 2025 observed", h.Date, "2025-03-24")
			if !h.Moved {
				tr.recordError("San José 2025", "expected moved=true")
			}
		}
		if tr.verbose {
			tr.printHolidayDetail(h)
		}
	}
}

func (tr *TestRunner) testCarnival() {
	tr.printSection("Carnival 2024")

	var data CarnivalResponse
	if err := tr.getData("/api/v1/carnival/2024", &data); err != nil {
		tr.recordError("Carnival 2024", err.Error())
		return
	}

	tr.expect("Ash Wednesday 2024", data.AshWednesday, "2024-02-14")
	tr.expect("Carnival 2024", strings.Join(data.Days, ","), "2024-02-10,2024-02-11,2024-02-12,2024-02-13")
}

func (tr *TestRunner) testDates() {
	tr.printSection("Specific Dates")

	dates := []struct {
		date        string
		businessDay bool
	}{
		{"2025-01-01", false},
		{"2025-03-19", true},
		{"2025-03-24", false},
		{"2025-07-20", false},
		{"2025-12-26", true},
	}

	for _, tc := range dates {
		var data DateResponse
		if err := tr.getData("/api/v1/dates/"+tc.date, &data); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		name := "-"
		if data.Holiday != nil {
			name = data.Holiday.Name
		}
		if data.BusinessDay != tc.businessDay {
			tr.recordError(tc.date, fmt.Sprintf("business_day = %v, want %v", data.BusinessDay, tc.businessDay))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s (%s): %s, business day %v", tc.date, data.Weekday, name, data.BusinessDay))
	}
}

func (tr *TestRunner) testCalendarFile() {
	tr.printSection("Calendar Export")

	resp, err := tr.getRaw("/api/v1/calendar/2024.ics")
	if err != nil {
		tr.recordError("ICS 2024", err.Error())
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tr.recordError("ICS 2024", err.Error())
		return
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar") {
		tr.recordError("ICS 2024", "unexpected content type "+resp.Header.Get("Content-Type"))
		return
	}
	if !strings.Contains(string(body), "DTSTART;VALUE=DATE:20240101\r\n") {
		tr.recordError("ICS 2024", "missing New Year event")
		return
	}
	tr.recordSuccess(fmt.Sprintf("ICS 2024: %d events", strings.Count(string(body), "BEGIN:VEVENT")))
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	tests := []struct {
		name string
		path string
	}{
		{"Year before Gregorian calendar", "/api/v1/holidays/1200"},
		{"Year too large", "/api/v1/easter/10000"},
		{"Invalid month", "/api/v1/holidays/2024/month/13"},
		{"Invalid date", "/api/v1/dates/2024-02-30"},
		{"Reversed range", "/api/v1/business-days?start=2024-02-01&end=2024-01-01"},
	}

	for _, tc := range tests {
		resp, err := tr.getRaw(tc.path)
		if err != nil {
			tr.recordError(tc.name, err.Error())
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusBadRequest {
			tr.recordSuccess(fmt.Sprintf("%s: rejected with 400", tc.name))
		} else {
			tr.recordError(tc.name, fmt.Sprintf("status %d, want 400", resp.StatusCode))
		}
	}
}

func (tr *TestRunner) testYearSweep() {
	tr.printSection("Years 2020-2035")

	for year := 2020; year <= 2035; year++ {
		var data HolidaysResponse
		if err := tr.getData(fmt.Sprintf("/api/v1/holidays/%d", year), &data); err != nil {
			tr.recordError(fmt.Sprint(year), err.Error())
			continue
		}

		moved := 0
		for _, h := range data.Holidays {
			if h.Moved {
				moved++
			}
		}
		tr.recordSuccess(fmt.Sprintf("%d: %d holidays, %d moved", year, data.Count, moved))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	url := tr.baseURL + path
	return tr.client.Get(url)
}

// getData fetches path and decodes the data field into target.
func (tr *TestRunner) getData(path string, target interface{}) error {
	resp, err := tr.get(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.Data, target)
}

func (tr *TestRunner) expect(name, got, want string) {
	if got == want {
		tr.recordSuccess(fmt.Sprintf("%s: %s", name, got))
		return
	}
	tr.recordError(name, fmt.Sprintf("got %q, want %q", got, want))
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printHolidayDetail(h Holiday) {
	if h.Moved {
		fmt.Printf("    %-28s %s (from %s)\n", h.Name, h.Date, h.OriginalDate)
		return
	}
	fmt.Printf("    %-28s %s\n", h.Name, h.Date)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (list every holiday)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
