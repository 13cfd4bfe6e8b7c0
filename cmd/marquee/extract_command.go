package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
	"marquee/internal/extract"
	"marquee/internal/logging"
	"marquee/internal/schedule"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		structured bool
		analyze    bool
		outDir     string
		firstDay   int
	)

	cmd := &cobra.Command{
		Use:   "extract <page.txt|day-table.json>...",
		Short: "Extract showings from OCR page text into day files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Paths.ExtractDir
			}

			if analyze {
				return runAnalyze(cmd, ctx, args)
			}

			var days []schedule.Day
			if structured {
				days, err = extractStructured(ctx, args)
			} else {
				if firstDay < 1 {
					return fmt.Errorf("--first-day must be 1 or higher, got %d", firstDay)
				}
				days, err = extractFreeform(cmd, ctx, args, firstDay)
			}
			if err != nil {
				return err
			}
			if len(days) == 0 {
				return fmt.Errorf("no days extracted from %d input(s)", len(args))
			}

			rows := make([][]string, 0, len(days))
			for _, day := range days {
				path, err := writeDayFile(outDir, day)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					day.Date,
					day.Label,
					strconv.Itoa(len(day.Screenings)),
					strconv.Itoa(day.ShowingCount()),
					path,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]column{col("Date"), col("Label"), numericCol("Screenings"), numericCol("Showings"), col("File")},
				rows,
			))

			printMatchPreview(cmd, ctx, cfg.Paths.CatalogPath, days)
			return nil
		},
	}

	cmd.Flags().BoolVar(&structured, "structured", false, "Treat inputs as hand-curated day tables instead of OCR text")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "Report recognition signals per page without writing day files")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for day files (default: configured extract directory)")
	cmd.Flags().IntVar(&firstDay, "first-day", 1, "Day number assigned to the earliest extracted date")

	return cmd
}

func extractFreeform(cmd *cobra.Command, ctx *commandContext, args []string, firstDay int) ([]schedule.Day, error) {
	cfg := ctx.configValue()
	pages, err := readPages(args)
	if err != nil {
		return nil, err
	}

	extractor := extract.New(cfg, ctx.log())
	inputs, stats := extractor.ExtractPages(pages)

	days := make([]schedule.Day, 0, len(inputs))
	for i, in := range inputs {
		in.DayNumber = firstDay + i
		days = append(days, schedule.Assemble(cfg, in))
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Scanned %d page(s): %d record(s), %d showing(s), %d slot overflow(s), %d skipped page(s)\n",
		stats.Pages, stats.Records, stats.Showings, stats.SlotOverflows, stats.SkippedPages)
	return days, nil
}

func extractStructured(ctx *commandContext, args []string) ([]schedule.Day, error) {
	cfg := ctx.configValue()
	logger := ctx.log()

	days := make([]schedule.Day, 0, len(args))
	for _, path := range args {
		table, err := extract.LoadDayTable(path)
		if err != nil {
			return nil, err
		}
		in, dropped := table.Coerce(logger)
		if dropped > 0 {
			logger.Warn("day table had malformed entries",
				logging.String(logging.FieldDate, in.Date),
				logging.Int(logging.FieldCount, dropped),
			)
		}
		days = append(days, schedule.Assemble(cfg, in))
	}
	return days, nil
}

func runAnalyze(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg := ctx.configValue()
	pages, err := readPages(args)
	if err != nil {
		return err
	}

	scans := extract.New(cfg, ctx.log()).Analyze(pages)
	rows := make([][]string, 0, len(scans))
	for _, scan := range scans {
		rows = append(rows, []string{
			strconv.Itoa(scan.Page),
			strconv.Itoa(len(scan.Records)),
			strconv.Itoa(len(scan.Times)),
			strings.Join(scan.Dates, ", "),
			strings.Join(scan.Venues, ", "),
			scan.Screen,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]column{numericCol("Page"), numericCol("Records"), numericCol("Times"), col("Dates"), col("Venues"), col("Screen")},
		rows,
	))
	return nil
}

// printMatchPreview reports how the extracted titles would resolve against
// the catalog. A missing catalog is fine at extract time; the hard
// requirement lands at merge.
func printMatchPreview(cmd *cobra.Command, ctx *commandContext, catalogPath string, days []schedule.Day) {
	if _, err := os.Stat(catalogPath); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog not available at %s; skipping match preview\n", catalogPath)
		return
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		ctx.log().Warn("catalog load failed; skipping match preview", logging.Error(err))
		return
	}

	report := schedule.MatchDays(days, cat)
	fmt.Fprintf(cmd.OutOrStdout(), "Catalog preview: %d matched, %d unmatched\n", report.Matched, report.Unmatched)
	for _, title := range report.UnmatchedTitles {
		fmt.Fprintf(cmd.OutOrStdout(), "  unmatched: %s\n", title)
	}
}
