// Command apitest runs smoke checks against a running holidays API.
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

	"github.com/zapponejosh/market-holidays/internal/api"
	"github.com/zapponejosh/market-holidays/internal/holidays"
)

// Known NYSE observed dates the server must reproduce.
var knownDates = []struct {
	year    int
	holiday string
	date    string
}{
	{2021, "Independence Day", "2021-07-05"},
	{2021, "Christmas", "2021-12-24"},
	{2022, "New Year's Day", "2021-12-31"},
	{2022, "Good Friday", "2022-04-15"},
	{2023, "Independence Day", "2023-07-04"},
	{2024, "Memorial Day", "2024-05-27"},
	{2026, "Christmas", "2026-12-25"},
}

// TestRunner issues requests and tallies results.
type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		out:     out,
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Market Holidays API Smoke Test")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testCatalog()
	tr.testKnownDates()
	tr.testRange()
	tr.testCheck()
	tr.testEdgeCases()

	tr.printSummary()
}

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health map[string]string
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health["status"] == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health["status"]))
	}
}

func (tr *TestRunner) testCatalog() {
	tr.printSection("Catalog")

	var cat api.CatalogResponse
	if err := tr.getData("/api/v1/catalog", &cat); err != nil {
		tr.recordError("Catalog", err.Error())
		return
	}
	if len(cat.Holidays) == 0 {
		tr.recordError("Catalog", "no holidays")
		return
	}
	tr.recordSuccess(fmt.Sprintf("Catalog %q with %d holidays", cat.Name, len(cat.Holidays)))

	if tr.verbose {
		for _, h := range cat.Holidays {
			fmt.Fprintf(tr.out, "    %-28s %s\n", h.Name, h.Rule)
		}
	}
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Observed Dates")

	sets := make(map[int]holidays.YearSet)
	for _, k := range knownDates {
		set, ok := sets[k.year]
		if !ok {
			if err := tr.getData(fmt.Sprintf("/api/v1/holidays/%d", k.year), &set); err != nil {
				tr.recordError(fmt.Sprint(k.year), err.Error())
				continue
			}
			sets[k.year] = set
		}

		got := ""
		for _, h := range set.Holidays {
			if h.Name == k.holiday {
				got = h.Date.String()
			}
		}
		if got == k.date {
			tr.recordSuccess(fmt.Sprintf("%d %s: %s", k.year, k.holiday, got))
		} else {
			tr.recordError(fmt.Sprintf("%d %s", k.year, k.holiday), fmt.Sprintf("got %q, want %s", got, k.date))
		}
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Year Range")

	var sets []holidays.YearSet
	if err := tr.getData("/api/v1/holidays?from=2020&to=2029", &sets); err != nil {
		tr.recordError("Range", err.Error())
		return
	}
	if len(sets) != 10 {
		tr.recordError("Range", fmt.Sprintf("got %d years, want 10", len(sets)))
		return
	}
	for _, set := range sets {
		if !set.Ordered() {
			tr.recordError("Range", fmt.Sprintf("%d not in calendar order", set.Year))
			return
		}
	}
	tr.recordSuccess("2020-2029 returned in order")
}

func (tr *TestRunner) testCheck() {
	tr.printSection("Date Check")

	cases := map[string]bool{
		"2024-03-29": true,  // Good Friday
		"2024-03-28": false, // trading day
		"2021-12-31": true,  // New Year's Day 2022 observed
	}
	for date, wantHoliday := range cases {
		var resp api.CheckResponse
		if err := tr.getData("/api/v1/holidays/check/"+date, &resp); err != nil {
			tr.recordError(date, err.Error())
			continue
		}
		if resp.Holiday != wantHoliday {
			tr.recordError(date, fmt.Sprintf("holiday = %v, want %v", resp.Holiday, wantHoliday))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s holiday=%v %s", date, resp.Holiday, resp.Name))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	statusCases := []struct {
		name   string
		path   string
		status int
	}{
		{"Non-numeric year rejected", "/api/v1/holidays/abc", http.StatusBadRequest},
		{"Pre-Gregorian year rejected", "/api/v1/holidays/1500", http.StatusUnprocessableEntity},
		{"Five-digit year rejected", "/api/v1/holidays/10000", http.StatusUnprocessableEntity},
		{"Overflowing range rejected", "/api/v1/holidays?from=-10&to=9223372036854775807", http.StatusBadRequest},
		{"Inverted range rejected", "/api/v1/holidays?from=2030&to=2020", http.StatusBadRequest},
		{"Missing range parameter rejected", "/api/v1/holidays?from=2020", http.StatusBadRequest},
		{"Invalid date rejected", "/api/v1/holidays/check/2024-02-30", http.StatusBadRequest},
	}

	for _, c := range statusCases {
		resp, err := tr.getRaw(c.path)
		if err != nil {
			tr.recordError(c.name, err.Error())
			continue
		}
		resp.Body.Close()
		if resp.StatusCode == c.status {
			tr.recordSuccess(c.name)
		} else {
			tr.recordError(c.name, fmt.Sprintf("status %d, want %d", resp.StatusCode, c.status))
		}
	}
}

// getData fetches path and decodes the envelope's data into target.
func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *api.ErrorInfo  `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if !envelope.Success {
		errMsg := "unknown error"
		if envelope.Error != nil {
			errMsg = envelope.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}

	return json.Unmarshal(envelope.Data, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n--- %s ---\n\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		return
	}
	fmt.Fprintln(tr.out, "\nAll checks passed! ✓")
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show catalog rules)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, os.Stdout, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
