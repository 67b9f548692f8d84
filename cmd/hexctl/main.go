// Command hexctl is the ops CLI for inspecting and driving a hexrealm
// snapshot: status, tiles, units and endturn subcommands, each reading
// and (for endturn) re-saving a snapshot through the persistence store.
package main

import (
	"fmt"
	"os"

	"github.com/hexshard/hexrealm/cmd/hexctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
