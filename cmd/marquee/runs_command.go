package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/runlog"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent merge runs from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			journal, err := runlog.Open(cfg)
			if err != nil {
				return err
			}
			defer journal.Close()

			runs, err := journal.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.StartedAt.Format("2006-01-02 15:04:05"),
					run.Mode,
					run.Source,
					strconv.Itoa(run.Days),
					strconv.Itoa(run.Showings),
					strconv.Itoa(run.Matched),
					strconv.Itoa(run.Unmatched),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]column{col("Started"), col("Mode"), col("Source"), numericCol("Days"), numericCol("Showings"), numericCol("Matched"), numericCol("Unmatched")},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs to list (0 for all)")
	return cmd
}
