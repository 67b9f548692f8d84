package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List all units in a snapshot",
	Long: `Display every unit, grouped by civ, with its position, health and
remaining movement points.

Examples:
  hexctl units --snapshot-id abc123
  hexctl units --snapshot-id abc123 --json`,
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	world, _, err := openWorld()
	if err != nil {
		return err
	}
	formatter := newOutputFormatter()

	type unitRow struct {
		ID             int    `json:"id"`
		CivID          int    `json:"civId"`
		Type           string `json:"type"`
		HP             int    `json:"hp"`
		MaxHP          int    `json:"maxHp"`
		MovesRemaining int    `json:"movesRemaining"`
		X              *int   `json:"x,omitempty"`
		Y              *int   `json:"y,omitempty"`
	}
	var rows []unitRow
	for _, u := range world.Units {
		row := unitRow{
			ID: int(u.ID), CivID: int(u.CivID), Type: u.Type,
			HP: u.HP, MaxHP: u.MaxHP, MovesRemaining: u.MovesRemaining,
		}
		if u.Coords != nil {
			x, y := u.Coords.X, u.Coords.Y
			row.X, row.Y = &x, &y
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CivID != rows[j].CivID {
			return rows[i].CivID < rows[j].CivID
		}
		return rows[i].ID < rows[j].ID
	})

	if formatter.JSON {
		return formatter.printJSON(rows)
	}
	out := ""
	for _, r := range rows {
		pos := "unplaced"
		if r.X != nil {
			pos = fmt.Sprintf("(%d,%d)", *r.X, *r.Y)
		}
		out += fmt.Sprintf("unit %-4d civ=%-3d %-10s hp=%d/%d moves=%d pos=%s\n",
			r.ID, r.CivID, r.Type, r.HP, r.MaxHP, r.MovesRemaining, pos)
	}
	return formatter.printText(out)
}
