package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/schedule"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Display the schedule store, optionally a single day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			doc, err := schedule.Read(cfg.Paths.StorePath)
			if err != nil {
				return err
			}

			days := doc.Days
			if len(args) == 1 {
				day := doc.FindDay(args[0])
				if day == nil {
					return fmt.Errorf("no day %s in store", args[0])
				}
				days = []schedule.Day{*day}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (updated %s)\n", doc.Schedule.Source, doc.Schedule.LastUpdated)
			for _, day := range days {
				fmt.Fprintf(out, "\n%s (%s)\n", day.Label, day.Date)
				rows := make([][]string, 0, day.ShowingCount())
				for _, screening := range day.Screenings {
					venue := cfg.DisplayName(screening.Venue)
					for _, showing := range screening.Showings {
						director := ""
						if showing.Director != nil {
							director = *showing.Director
						}
						rows = append(rows, []string{
							venue,
							screening.Screen,
							showing.Time,
							showing.FilmTitle(),
							director,
							strconv.Itoa(showing.Year),
							strconv.Itoa(showing.Duration) + "m",
						})
					}
				}
				fmt.Fprintln(out, renderTable(
					[]column{col("Venue"), col("Screen"), numericCol("Time"), col("Film"), col("Director"), numericCol("Year"), numericCol("Duration")},
					rows,
				))
			}
			return nil
		},
	}
	return cmd
}
