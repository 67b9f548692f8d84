package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a snapshot's civ/city/unit/trader counts",
	Long: `Display the saved turn number and a summary of every civ, city,
unit and trader in a snapshot.

Examples:
  hexctl status --snapshot-id abc123
  hexctl status --snapshot-id abc123 --json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	id, err := getSnapshotID()
	if err != nil {
		return err
	}
	world, store, err := openWorld()
	if err != nil {
		return err
	}
	meta, err := store.Meta(id)
	if err != nil {
		return err
	}

	traderCount := len(world.Map.Traders())
	formatter := newOutputFormatter()

	if formatter.JSON {
		return formatter.printJSON(map[string]any{
			"snapshot_id": id,
			"name":        meta.Name,
			"turn":        meta.Turn,
			"civs":        len(world.Civs),
			"cities":      len(world.Cities),
			"units":       len(world.Units),
			"traders":     traderCount,
		})
	}

	text := fmt.Sprintf(
		"Snapshot: %s (%s)\n  Turn:    %d\n  Civs:    %d\n  Cities:  %d\n  Units:   %d\n  Traders: %d\n",
		id, meta.Name, meta.Turn, len(world.Civs), len(world.Cities), len(world.Units), traderCount,
	)
	return formatter.printText(text)
}
