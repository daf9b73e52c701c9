package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/festivos-api/internal/view"
)

// Cell colors by class.
var (
	colorSunday   = lipgloss.Color("#e53935")
	colorHoliday  = lipgloss.Color("#8BC34A")
	colorEmiliani = lipgloss.Color("#2196F3")
	colorCarnival = lipgloss.Color("#FFC107")
	colorAsh      = lipgloss.Color("#9E9E9E")
)

const cellWidth = 4

// gridStyles are bound to the renderer of the output writer so colors
// are dropped when the output is not a terminal.
type gridStyles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	box    lipgloss.Style
}

func newGridStyles(w io.Writer) gridStyles {
	r := lipgloss.NewRenderer(w)
	return gridStyles{
		title:  r.NewStyle().Bold(true).Width(7 * cellWidth).Align(lipgloss.Center),
		header: r.NewStyle().Faint(true).Width(cellWidth).Align(lipgloss.Right),
		cell:   r.NewStyle().Width(cellWidth).Align(lipgloss.Right),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (s gridStyles) dayCell(c view.DayCell) string {
	if c.Empty {
		return s.cell.Render("")
	}

	style := s.cell
	switch {
	case c.HasClass(view.ClassAshWednesday):
		style = style.Foreground(colorAsh)
	case c.HasClass(view.ClassCarnival):
		style = style.Foreground(colorCarnival)
	case c.HasClass(view.ClassEmiliani):
		style = style.Foreground(colorEmiliani).Bold(true)
	case c.HasClass(view.ClassHoliday):
		style = style.Foreground(colorHoliday).Bold(true)
	case c.HasClass(view.ClassSunday):
		style = style.Foreground(colorSunday)
	}
	if c.HasClass(view.ClassToday) {
		style = style.Underline(true)
	}

	return style.Render(fmt.Sprint(c.Day))
}

func (s gridStyles) month(title string, g view.MonthGrid) string {
	lines := []string{s.title.Render(title)}

	headers := make([]string, 0, len(g.Headers))
	for _, h := range g.Headers {
		headers = append(headers, s.header.Render(shortHeader(h)))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, headers...))

	for i := 0; i < len(g.Cells); i += 7 {
		end := min(i+7, len(g.Cells))
		week := make([]string, 0, 7)
		for _, c := range g.Cells[i:end] {
			week = append(week, s.dayCell(c))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, week...))
	}

	return s.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// shortHeader trims long weekday names so they fit a cell.
func shortHeader(h string) string {
	r := []rune(h)
	if len(r) > cellWidth-1 {
		return string(r[:cellWidth-1])
	}
	return h
}

// renderMonth draws a single month grid.
func renderMonth(w io.Writer, year int, month time.Month, today civil.Date) error {
	page := view.Render(view.State{Year: year, Month: month, Mode: view.ModeMonthly}, today)
	s := newGridStyles(w)
	_, err := fmt.Fprintln(w, s.month(page.Title, page.Months[0]))
	return err
}

// renderYear draws the twelve months, three per row.
func renderYear(w io.Writer, year int, today civil.Date) error {
	page := view.Render(view.State{Year: year, Month: time.January, Mode: view.ModeAnnual}, today)
	s := newGridStyles(w)

	var rows []string
	for i := 0; i < len(page.Months); i += 3 {
		boxes := make([]string, 0, 3)
		for _, g := range page.Months[i : i+3] {
			boxes = append(boxes, s.month(g.Name, g))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	_, err := fmt.Fprintln(w, s.title.Width(0).Render(page.Title)+"\n"+strings.Join(rows, "\n"))
	return err
}

func newYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year",
		Short: "Render the twelve months of a year",
		Long: `Render the twelve months of a year as terminal grids.

Holidays are highlighted in green, holidays moved by Ley Emiliani in blue,
the carnival in yellow, Ash Wednesday in grey and Sundays in red. Today is
underlined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := a.today()
			page := view.Render(view.State{Year: a.year, Month: today.Month, Mode: view.ModeAnnual}, today)
			return a.render(cmd.OutOrStdout(), page, func(w io.Writer) error {
				return renderYear(w, a.year, today)
			})
		},
	}
}
