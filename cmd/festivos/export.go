package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/festivos-api/internal/calendar"
	"github.com/zapponejosh/festivos-api/internal/config"
	"github.com/zapponejosh/festivos-api/internal/ical"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		file   string
		domain string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the holidays and carnival of a year as an iCalendar file",
		Long: `Write the holidays and carnival of a year as an iCalendar file.

The calendar identity is read from the same ICS_VENDOR, ICS_PRODUCT,
ICS_DOMAIN and ICS_CALENDAR_NAME settings as the API, including a .env
file in the working directory. --domain overrides ICS_DOMAIN.`,
		Example: `  festivos export --year 2025 -f festivos-colombia-2025.ics
  festivos export > holidays.ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			exporter := ical.NewExporterFromConfig(cfg)
			if domain != "" {
				exporter.Domain = domain
			}
			events := ical.YearEvents(a.year)

			if file == "" || file == "-" {
				return exporter.Write(cmd.OutOrStdout(), a.year, events)
			}

			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("create %s: %w", file, err)
			}
			if err := exporter.Write(f, a.year, events); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", file, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", file, err)
			}

			a.log.Info("calendar exported", "file", file, "year", a.year, "events", len(events))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d events to %s\n", len(events), file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Destination file (default: stdout)")
	cmd.Flags().StringVar(&domain, "domain", "", "Domain used in event UIDs")
	return cmd
}

// CheckReport compares an iCalendar file with the computed events of a
// year.
type CheckReport struct {
	Year     int      `json:"year" yaml:"year"`
	File     string   `json:"file" yaml:"file"`
	Expected int      `json:"expected" yaml:"expected"`
	Found    int      `json:"found" yaml:"found"`
	Matched  int      `json:"matched" yaml:"matched"`
	Missing  []string `json:"missing" yaml:"missing"`
	Extra    []string `json:"extra" yaml:"extra"`
}

// OK reports whether the file matched exactly.
func (r CheckReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file.ics>",
		Short: "Compare an iCalendar file against the computed holidays",
		Long: `Compare an iCalendar file against the holidays and carnival days
computed for --year.

Events are matched by summary and start date. The command fails when the
file is missing an event or contains one that was not expected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			imported, err := ical.Parse(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			report := compareEvents(a.year, ical.YearEvents(a.year), imported)
			report.File = args[0]

			if err := a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
				return printCheckReport(w, report)
			}); err != nil {
				return err
			}

			if !report.OK() {
				return fmt.Errorf("%s: %d missing, %d unexpected events", args[0], len(report.Missing), len(report.Extra))
			}
			return nil
		},
	}
}

func eventKey(name string, date string) string {
	return date + " " + name
}

// compareEvents matches events by name and start date. Duplicates are
// counted individually.
func compareEvents(year int, expected []ical.Event, imported []ical.ImportedEvent) CheckReport {
	report := CheckReport{
		Year:     year,
		Expected: len(expected),
		Found:    len(imported),
		Missing:  []string{},
		Extra:    []string{},
	}

	want := make(map[string]int, len(expected))
	for _, ev := range expected {
		want[eventKey(ev.Name, ev.Date.String())]++
	}

	for _, ev := range imported {
		key := eventKey(ev.Name, ev.Start.String())
		if want[key] > 0 {
			want[key]--
			report.Matched++
			continue
		}
		report.Extra = append(report.Extra, key)
	}

	for key, n := range want {
		for ; n > 0; n-- {
			report.Missing = append(report.Missing, key)
		}
	}

	sort.Strings(report.Missing)
	sort.Strings(report.Extra)
	return report
}

func printCheckReport(w io.Writer, r CheckReport) error {
	fmt.Fprintf(w, "%s: %d/%d events matched (%d in file)\n", r.File, r.Matched, r.Expected, r.Found)
	for _, m := range r.Missing {
		fmt.Fprintf(w, "  missing:    %s\n", m)
	}
	for _, e := range r.Extra {
		fmt.Fprintf(w, "  unexpected: %s\n", e)
	}
	if r.OK() {
		_, err := fmt.Fprintln(w, "OK")
		return err
	}
	return nil
}

// VerifyMismatch is a holiday whose observed date differs between the
// shifter and the business calendar rules.
type VerifyMismatch struct {
	Year     int    `json:"year" yaml:"year"`
	Name     string `json:"name" yaml:"name"`
	Shifter  string `json:"shifter" yaml:"shifter"`
	Business string `json:"business" yaml:"business"`
}

// VerifyReport summarizes a verification run.
type VerifyReport struct {
	From       int              `json:"from" yaml:"from"`
	To         int              `json:"to" yaml:"to"`
	Holidays   int              `json:"holidays" yaml:"holidays"`
	Mismatches []VerifyMismatch `json:"mismatches" yaml:"mismatches"`
}

func newVerifyCmd(a *app) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the Ley Emiliani shifter against the business calendar",
		Long: `Compute the observed holidays for every year in a range twice, once with
the Ley Emiliani shifter and once with the business calendar rules, and
report every holiday whose dates disagree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("from") {
				from = a.year
			}
			if !cmd.Flags().Changed("to") {
				to = from
			}
			if from < minYear || to > maxYear || from > to {
				return fmt.Errorf("invalid range %d-%d: years must be within %d-%d", from, to, minYear, maxYear)
			}

			report := verifyRange(calendar.NewBusinessCalendar(), from, to)
			a.log.Debug("verification finished", "from", from, "to", to, "holidays", report.Holidays)

			if err := a.render(cmd.OutOrStdout(), report, func(w io.Writer) error {
				if len(report.Mismatches) == 0 {
					_, err := fmt.Fprintf(w, "%d holidays checked for %d-%d: all match\n", report.Holidays, from, to)
					return err
				}
				rows := make([][]string, 0, len(report.Mismatches))
				for _, m := range report.Mismatches {
					rows = append(rows, []string{fmt.Sprint(m.Year), m.Name, m.Shifter, m.Business})
				}
				return printTable(w, []string{"Año", "Festivo", "Ley Emiliani", "Calendario"}, rows)
			}); err != nil {
				return err
			}

			if n := len(report.Mismatches); n > 0 {
				return fmt.Errorf("%d mismatches found", n)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First year (default: --year)")
	cmd.Flags().IntVar(&to, "to", 0, "Last year (default: --from)")
	return cmd
}

func verifyRange(b *calendar.BusinessCalendar, from, to int) VerifyReport {
	report := VerifyReport{From: from, To: to, Mismatches: []VerifyMismatch{}}

	for year := from; year <= to; year++ {
		observed := b.ObservedDates(year)
		for _, h := range calendar.ApplyLeyEmiliani(calendar.BuildHolidays(year)) {
			report.Holidays++
			got, ok := observed[h.Name]
			if ok && got == h.Date {
				continue
			}
			mismatch := VerifyMismatch{Year: year, Name: h.Name, Shifter: h.Date.String()}
			if ok {
				mismatch.Business = got.String()
			}
			report.Mismatches = append(report.Mismatches, mismatch)
		}
	}

	return report
}

// WorkdaysResult is the business day count for a date range.
type WorkdaysResult struct {
	Start        string   `json:"start" yaml:"start"`
	End          string   `json:"end" yaml:"end"`
	BusinessDays int      `json:"business_days" yaml:"business_days"`
	Holidays     []string `json:"holidays" yaml:"holidays"`
}

// AddResult is the date a number of business days away from Start.
type AddResult struct {
	Start string `json:"start" yaml:"start"`
	Days  int    `json:"days" yaml:"days"`
	Date  string `json:"date" yaml:"date"`
}

func newWorkdaysCmd(a *app) *cobra.Command {
	var (
		start, end string
		add        int
	)

	cmd := &cobra.Command{
		Use:   "workdays",
		Short: "Count business days between two dates",
		Long: `Count the Monday to Friday days between --start and --end, both
included, that are not observed holidays.

With --add N, print the date N business days after --start instead
(before it when N is negative).`,
		Example: `  festivos workdays --start 2024-03-25 --end 2024-03-31
  festivos workdays --start 2024-03-22 --add 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adding := cmd.Flags().Changed("add")
			if adding == (end != "") {
				return errors.New("use exactly one of --end or --add")
			}

			from, err := calendar.ParseDateString(start)
			if err != nil {
				return err
			}
			b := calendar.NewBusinessCalendar()

			if adding {
				result := AddResult{
					Start: from.String(),
					Days:  add,
					Date:  b.AddBusinessDays(from, add).String(),
				}
				return a.render(cmd.OutOrStdout(), result, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s + %d business days: %s\n", result.Start, result.Days, result.Date)
					return err
				})
			}

			to, err := calendar.ParseDateString(end)
			if err != nil {
				return err
			}
			if to.Before(from) {
				return fmt.Errorf("end %s is before start %s", to, from)
			}

			result := WorkdaysResult{
				Start:        from.String(),
				End:          to.String(),
				BusinessDays: b.BusinessDaysBetween(from, to),
				Holidays:     []string{},
			}
			for d := from; !d.After(to); d = d.AddDays(1) {
				if name, ok := b.IsHoliday(d); ok {
					result.Holidays = append(result.Holidays, eventKey(name, d.String()))
				}
			}

			return a.render(cmd.OutOrStdout(), result, func(w io.Writer) error {
				fmt.Fprintf(w, "%s to %s: %d business days\n", result.Start, result.End, result.BusinessDays)
				for _, h := range result.Holidays {
					fmt.Fprintf(w, "  holiday: %s\n", h)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&add, "add", 0, "Business days to add to --start")
	_ = cmd.MarkFlagRequired("start")
	cmd.MarkFlagsMutuallyExclusive("end", "add")
	return cmd
}
