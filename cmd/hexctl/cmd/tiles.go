package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hexshard/hexrealm/sim"
)

var tilesCivID int

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "List tiles, optionally as seen by one civ",
	Long: `Display every tile's terrain, owner and improvement.

With --civ, list only tiles that civ has discovered, using its own
fog-of-war view (undiscovered tiles are omitted, stale ones are marked
not-visible).

Examples:
  hexctl tiles --snapshot-id abc123
  hexctl tiles --snapshot-id abc123 --civ 0 --json`,
	RunE: runTiles,
}

func init() {
	tilesCmd.Flags().IntVar(&tilesCivID, "civ", -1, "restrict to this civ's discovered view")
	rootCmd.AddCommand(tilesCmd)
}

func runTiles(cmd *cobra.Command, args []string) error {
	world, _, err := openWorld()
	if err != nil {
		return err
	}
	formatter := newOutputFormatter()

	if tilesCivID >= 0 {
		civID := sim.CivID(tilesCivID)
		var views []*sim.TileView
		world.Map.AllTiles(func(t *sim.Tile) {
			if v := world.Map.GetCivTile(civID, t); v != nil {
				views = append(views, v)
			}
		})
		if formatter.JSON {
			return formatter.printJSON(views)
		}
		out := ""
		for _, v := range views {
			out += formatTileViewLine(v) + "\n"
		}
		return formatter.printText(out)
	}

	type tileRow struct {
		Coord       sim.Coord           `json:"coord"`
		Terrain     sim.TerrainType     `json:"terrain"`
		Owner       *sim.CityID         `json:"owner,omitempty"`
		Improvement *sim.ImprovementType `json:"improvement,omitempty"`
	}
	var rows []tileRow
	world.Map.AllTiles(func(t *sim.Tile) {
		row := tileRow{Coord: t.Coord, Terrain: t.Terrain, Owner: t.Owner}
		if t.Improvement != nil {
			it := t.Improvement.Type
			row.Improvement = &it
		}
		rows = append(rows, row)
	})
	if formatter.JSON {
		return formatter.printJSON(rows)
	}
	out := ""
	for _, r := range rows {
		imp := "-"
		if r.Improvement != nil {
			imp = string(*r.Improvement)
		}
		owner := "-"
		if r.Owner != nil {
			owner = strconv.Itoa(int(*r.Owner))
		}
		out += fmt.Sprintf("(%d,%d) %-12s owner=%-4s improvement=%s\n", r.Coord.X, r.Coord.Y, r.Terrain, owner, imp)
	}
	return formatter.printText(out)
}

func formatTileViewLine(v *sim.TileView) string {
	imp := "-"
	if v.Improvement != nil {
		imp = string(v.Improvement.Type)
	}
	return fmt.Sprintf("(%d,%d) %-12s visible=%-5t improvement=%s", v.Coord.X, v.Coord.Y, v.Terrain, v.Visible, imp)
}
