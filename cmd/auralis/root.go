// Root command for the auralis CLI: global flags, config loading, and the
// store lifecycle shared by all subcommands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/auralis-hq/auralis/internal/paths"
	"github.com/auralis-hq/auralis/internal/sqlite"
	"github.com/auralis-hq/auralis/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Process-wide state, opened once by PersistentPreRunE and closed by
// PersistentPostRunE.
var (
	cfg    types.Config
	store  *sqlite.Store
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:          "auralis",
	Short:        "Auralis is a local-first personal command center",
	Long:         "Auralis manages areas, projects, tasks, notes, and an inbox\nin a local SQLite database, with note summarisation through a\nlocally-hosted language model.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return openStore(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(inboxCmd)
	rootCmd.AddCommand(noteCmd)
}

// openStore resolves configuration and opens the SQLite store. Skipped for
// the version command, which needs no database.
func openStore(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	if flagVerbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	cfg = types.Config{
		DataDir:     dataDir,
		OllamaURL:   v.GetString(cfgKeyOllamaURL),
		OllamaModel: v.GetString(cfgKeyOllamaModel),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err = sqlite.Open(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	return nil
}

// closeStore releases the store if it was opened.
func closeStore() error {
	if store == nil {
		return nil
	}
	return store.Close()
}

// emit prints v as indented JSON in --json mode, or the plain fallback line
// otherwise.
func emit(v any, plain string) error {
	if flagJSON {
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(plain)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("auralis v0.1.0")
	},
}
