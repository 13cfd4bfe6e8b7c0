package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/logging"
	"marquee/internal/runlog"
	"marquee/internal/schedule"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var (
		replace bool
		source  string
		note    string
	)

	cmd := &cobra.Command{
		Use:   "merge <day.json>...",
		Short: "Merge extracted day files into the schedule store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			cat, err := catalog.Load(cfg.Paths.CatalogPath)
			if err != nil {
				return err
			}
			days, err := readDayFiles(args)
			if err != nil {
				return err
			}

			store, err := schedule.Open(cfg.Paths.StorePath)
			if err != nil {
				return err
			}
			defer store.Close()

			mode := "append"
			if replace {
				mode = "replace"
			}
			run := runlog.Begin(mode, source)

			meta := schedule.MetaUpdate{
				LastUpdated: nowStamp(),
				Source:      source,
				Note:        note,
			}
			var report schedule.Report
			if replace {
				report = schedule.Replace(store.Document(), days, meta, cat)
			} else {
				report = schedule.Append(store.Document(), days, meta, cat)
			}

			if err := store.Save(); err != nil {
				return err
			}

			run.Days = report.DaysAdded
			run.Showings = report.ShowingsAdded
			run.Matched = report.Matched
			run.Unmatched = report.Unmatched
			run.UnmatchedTitles = report.UnmatchedTitles
			run.DuplicateDates = report.DuplicateDates
			recordRun(ctx, cmd, run)

			printReport(cmd, report, store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the store's day list instead of appending")
	cmd.Flags().StringVar(&source, "source", "", "Source document description recorded in store metadata")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note recorded in store metadata")

	return cmd
}

// recordRun journals the merge outcome. The store is already saved at this
// point, so a journal failure is reported but never fails the command.
func recordRun(ctx *commandContext, cmd *cobra.Command, run runlog.Run) {
	journal, err := runlog.Open(ctx.configValue())
	if err != nil {
		ctx.log().Warn("run journal unavailable", logging.Error(err))
		return
	}
	defer journal.Close()
	if err := journal.Record(cmd.Context(), run); err != nil {
		ctx.log().Warn("recording run failed", logging.Error(err))
	}
}

func printReport(cmd *cobra.Command, report schedule.Report, storePath string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]column{col("Mode"), numericCol("Days"), numericCol("Showings"), numericCol("Matched"), numericCol("Unmatched")},
		[][]string{{
			report.Mode,
			strconv.Itoa(report.DaysAdded),
			strconv.Itoa(report.ShowingsAdded),
			strconv.Itoa(report.Matched),
			strconv.Itoa(report.Unmatched),
		}},
	))

	if len(report.DuplicateDates) > 0 {
		fmt.Fprintf(out, "Warning: duplicate dates in store: %s\n", strings.Join(report.DuplicateDates, ", "))
	}
	for _, title := range report.UnmatchedTitles {
		fmt.Fprintf(out, "  unmatched: %s\n", title)
	}
	fmt.Fprintf(out, "Saved %s\n", storePath)
}
