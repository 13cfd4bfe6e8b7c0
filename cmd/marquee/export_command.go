package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marquee/internal/export"
	"marquee/internal/schedule"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule store as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			doc, err := schedule.Read(cfg.Paths.StorePath)
			if err != nil {
				return err
			}
			data, err := export.WriteXLSX(cfg, doc)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write workbook %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d day(s), %d showing(s) to %s\n",
				len(doc.Days), doc.TotalShowings(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "schedule.xlsx", "Workbook output path")
	return cmd
}
