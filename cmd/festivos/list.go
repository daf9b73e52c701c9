package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/festivos-api/internal/calendar"
)

func newListCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the holidays of a year",
		Long: `List the holidays of a year in catalog order.

Holidays moved by Ley Emiliani show their observed date and the original
date. Use --raw to list the catalog before any holiday is moved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			holidays := calendar.BuildHolidays(a.year)
			if raw {
				return a.render(cmd.OutOrStdout(), holidays, func(w io.Writer) error {
					rows := make([][]string, 0, len(holidays))
					for _, h := range holidays {
						rows = append(rows, []string{h.Name, calendar.FormatDate(h.Date), calendar.DayName(h.Date.Weekday()), fixedLabel(h.Fixed), h.Type.Label()})
					}
					return printTable(w, []string{"Festivo", "Fecha", "Día", "Tipo", "Categoría"}, rows)
				})
			}

			shifted := calendar.ApplyLeyEmiliani(holidays)
			a.log.Debug("computed holidays", "year", a.year, "count", len(shifted))
			return a.render(cmd.OutOrStdout(), shifted, func(w io.Writer) error {
				return printHolidays(w, shifted)
			})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "List the catalog without applying Ley Emiliani")
	return cmd
}

func newEasterCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "easter",
		Short: "Show Easter Sunday and the feasts derived from it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := calendar.DeriveEasterOffsets(a.year)
			return a.render(cmd.OutOrStdout(), o, func(w io.Writer) error {
				rows := [][]string{
					{"Domingo de Pascua", calendar.FormatDate(o.Easter), "0"},
					{calendar.AshWednesdayName, calendar.FormatDate(o.AshWednesday), fmt.Sprint(calendar.AshWednesdayOffset)},
					{calendar.HolyThursday, calendar.FormatDate(o.HolyThursday), fmt.Sprint(calendar.HolyThursdayOffset)},
					{calendar.GoodFriday, calendar.FormatDate(o.GoodFriday), fmt.Sprint(calendar.GoodFridayOffset)},
					{calendar.Ascension, calendar.FormatDate(o.Ascension), fmt.Sprint(calendar.AscensionOffset)},
					{calendar.CorpusChristi, calendar.FormatDate(o.CorpusChristi), fmt.Sprint(calendar.CorpusChristiOffset)},
					{calendar.SacredHeart, calendar.FormatDate(o.SacredHeart), fmt.Sprint(calendar.SacredHeartOffset)},
				}
				return printTable(w, []string{"Fiesta", "Fecha", "Días desde Pascua"}, rows)
			})
		},
	}
}

func newCarnivalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "carnival",
		Short: "Show the Barranquilla carnival days and Ash Wednesday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := calendar.DeriveCarnival(a.year)
			return a.render(cmd.OutOrStdout(), w, func(out io.Writer) error {
				rows := make([][]string, 0, len(w.Days)+1)
				for _, d := range w.Days {
					rows = append(rows, []string{calendar.CarnivalName, calendar.FormatDate(d), calendar.DayName(d.Weekday())})
				}
				rows = append(rows, []string{calendar.AshWednesdayName, calendar.FormatDate(w.AshWednesday), calendar.DayName(w.AshWednesday.Weekday())})
				return printTable(out, []string{"Evento", "Fecha", "Día"}, rows)
			})
		},
	}
}

func newMonthCmd(a *app) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Render one month with its holidays",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("month") {
				month = int(a.today().Month)
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("invalid month %d: use 1-12", month)
			}

			holidays := calendar.ForYear(a.year).HolidaysInMonth(time.Month(month))
			if holidays == nil {
				holidays = []calendar.ShiftedHoliday{}
			}
			return a.render(cmd.OutOrStdout(), holidays, func(w io.Writer) error {
				if err := renderMonth(w, a.year, time.Month(month), a.today()); err != nil {
					return err
				}
				if len(holidays) == 0 {
					return nil
				}
				return printHolidays(w, holidays)
			})
		},
	}

	cmd.Flags().IntVarP(&month, "month", "m", 0, "Month 1-12 (default: current month)")
	return cmd
}

func printHolidays(w io.Writer, holidays []calendar.ShiftedHoliday) error {
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		original := ""
		if h.Moved {
			original = calendar.FormatShortDate(h.OriginalDate)
		}
		rows = append(rows, []string{h.Name, calendar.FormatDate(h.Date), calendar.DayName(h.Date.Weekday()), original, h.Type.Label()})
	}
	return printTable(w, []string{"Festivo", "Fecha", "Día", "Movido desde", "Tipo"}, rows)
}

func fixedLabel(fixed bool) string {
	if fixed {
		return "fijo"
	}
	return "trasladable"
}
