// Command festivos prints, renders and exports the Colombian holiday
// calendar.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/festivos-api/internal/logger"
)

// Output formats accepted by --output.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// Years the CLI accepts. Easter is only defined for Gregorian years.
const (
	minYear = 1583
	maxYear = 9999
)

// app carries the state shared by every subcommand.
type app struct {
	year     int
	output   string
	logLevel string
	log      *slog.Logger
	now      func() time.Time
}

func (a *app) today() civil.Date {
	return civil.DateOf(a.now())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "festivos",
		Short: "Colombian public holiday calendar",
		Long: `festivos computes the Colombian public holidays for a year, applying
the Ley Emiliani rule that moves most religious and civic holidays to the
following Monday.

It can list holidays, render month grids, export iCalendar files and
check existing calendar files against the computed holidays.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = logger.New(cmd.ErrOrStderr(), a.logLevel, "text")

			if !cmd.Flags().Changed("year") {
				a.year = a.today().Year
			}
			if a.year < minYear || a.year > maxYear {
				return fmt.Errorf("year %d out of range %d-%d", a.year, minYear, maxYear)
			}

			switch a.output {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("invalid output %q: use table, json or yaml", a.output)
			}
			return nil
		},
	}

	root.PersistentFlags().IntVarP(&a.year, "year", "y", 0, "Year to compute (default: current year)")
	root.PersistentFlags().StringVarP(&a.output, "output", "O", outputTable, "Output format: table, json or yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(
		newListCmd(a),
		newEasterCmd(a),
		newCarnivalCmd(a),
		newMonthCmd(a),
		newYearCmd(a),
		newExportCmd(a),
		newCheckCmd(a),
		newVerifyCmd(a),
		newWorkdaysCmd(a),
	)

	return root
}

// render writes v in the selected output format. Table output is
// delegated to the caller.
func (a *app) render(w io.Writer, v any, tableFn func(io.Writer) error) error {
	switch a.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return tableFn(w)
	}
}

// printTable writes a bordered table.
func printTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func main() {
	a := &app{now: time.Now}
	if err := newRootCmd(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
