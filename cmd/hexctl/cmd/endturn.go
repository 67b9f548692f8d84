package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var endturnCmd = &cobra.Command{
	Use:   "endturn",
	Short: "Run one end-of-turn tick and save the result",
	Long: `Load a snapshot, run World.EndTurn once (work, errand completion,
knowledge spillover, trader shunt, then beginTurn for every human civ),
and save the result back under the same snapshot id.

Examples:
  hexctl endturn --snapshot-id abc123`,
	RunE: runEndTurn,
}

func init() {
	rootCmd.AddCommand(endturnCmd)
}

func runEndTurn(cmd *cobra.Command, args []string) error {
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

	world.EndTurn()

	newTurn := meta.Turn + 1
	if _, err := store.Save(id, meta.Name, newTurn, world.Export()); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", id, err)
	}

	formatter := newOutputFormatter()
	if formatter.JSON {
		return formatter.printJSON(map[string]any{"snapshot_id": id, "turn": newTurn})
	}
	return formatter.printText(fmt.Sprintf("End Turn: Success\n  Snapshot %s now at turn %d\n", id, newTurn))
}
