package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hexshard/hexrealm/persistence"
	"github.com/hexshard/hexrealm/sim"
)

var (
	cfgFile    string
	snapshotID string
	dbEndpoint string
	jsonOut    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:          "hexctl",
	Short:        "hexctl - command-line interface for a hexrealm world",
	SilenceUsage: true,
	Long: `hexctl inspects and drives a saved hexrealm world snapshot.

Examples:
  hexctl status --snapshot-id abc123
  hexctl tiles --snapshot-id abc123 --json
  hexctl units --snapshot-id abc123
  hexctl endturn --snapshot-id abc123

Global Flags:
  --snapshot-id string   Snapshot to operate on (or set HEXREALM_SNAPSHOT_ID env var)
  --db-endpoint string   Postgres DSN (or set HEXREALM_DB_ENDPOINT env var)
  --json                 Output in JSON format`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hexctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&snapshotID, "snapshot-id", "", "snapshot to operate on (env: HEXREALM_SNAPSHOT_ID)")
	rootCmd.PersistentFlags().StringVar(&dbEndpoint, "db-endpoint", "", "postgres DSN (env: HEXREALM_DB_ENDPOINT)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")

	viper.BindPFlag("snapshot-id", rootCmd.PersistentFlags().Lookup("snapshot-id"))
	viper.BindPFlag("db-endpoint", rootCmd.PersistentFlags().Lookup("db-endpoint"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hexctl")
	}

	viper.SetEnvPrefix("HEXREALM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.ReadInConfig()
}

func isJSONOutput() bool {
	return viper.GetBool("json")
}

// getSnapshotID retrieves the snapshot id from the flag, falling back
// to the bound env var/config value.
func getSnapshotID() (string, error) {
	id := snapshotID
	if id == "" {
		id = viper.GetString("snapshot-id")
	}
	if id == "" {
		return "", fmt.Errorf("snapshot id is required (set --snapshot-id flag or HEXREALM_SNAPSHOT_ID env var)")
	}
	return id, nil
}

func getDBEndpoint() string {
	if dbEndpoint != "" {
		return dbEndpoint
	}
	return viper.GetString("db-endpoint")
}

// openWorld is the shared per-command bootstrap: connect to the
// snapshot store and load the world named by --snapshot-id.
func openWorld() (*sim.World, *persistence.Store, error) {
	id, err := getSnapshotID()
	if err != nil {
		return nil, nil, err
	}
	logger := zap.NewNop()
	store, err := persistence.Open(getDBEndpoint(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to snapshot store: %w", err)
	}
	world, err := store.Load(id, sim.DefaultRegistry(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("loading snapshot %s: %w", id, err)
	}
	return world, store, nil
}
