package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/schedule"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	var (
		source string
		note   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty schedule store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			venues, err := venueDirectory(ctx)
			if err != nil {
				return err
			}
			store, err := schedule.Create(cfg.Paths.StorePath, schedule.Meta{
				LastUpdated: nowStamp(),
				Source:      source,
				Note:        note,
				Venues:      venues,
			})
			if err != nil {
				return err
			}
			defer store.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Source document description recorded in store metadata")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note recorded in store metadata")
	return cmd
}

// venueDirectory seeds the store's venue directory from the configured
// display names. The pipeline treats the directory as opaque afterwards.
func venueDirectory(ctx *commandContext) (json.RawMessage, error) {
	cfg := ctx.configValue()
	directory := make(map[string]map[string]string, len(cfg.Venues.Order))
	for _, venue := range cfg.Venues.Order {
		directory[venue] = map[string]string{"name": cfg.DisplayName(venue)}
	}
	data, err := json.Marshal(directory)
	if err != nil {
		return nil, fmt.Errorf("encode venue directory: %w", err)
	}
	return data, nil
}
