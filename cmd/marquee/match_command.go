package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"marquee/internal/catalog"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <title>...",
		Short: "Resolve a screening title against the film catalog",
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

			title := strings.Join(args, " ")
			match, ok := catalog.Resolve(cat, title)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "No catalog match for %q (key %q, %d films)\n",
					title, catalog.NormalizeTitle(title), cat.Len())
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]column{col("Strategy"), col("Title"), col("Director"), col("Country"), numericCol("Year"), numericCol("Runtime")},
				[][]string{{
					match.Strategy,
					match.Film.Title,
					match.Film.Director,
					match.Film.Country,
					strconv.Itoa(match.Film.Year),
					strconv.Itoa(match.Film.Runtime) + "m",
				}},
			))
			return nil
		},
	}
	return cmd
}
