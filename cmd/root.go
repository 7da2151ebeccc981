package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunmb/cadence/internal/catalog"
	"github.com/arjunmb/cadence/internal/memory"
	"github.com/arjunmb/cadence/internal/store"
	"github.com/arjunmb/cadence/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Spaced-repetition scheduling core for adaptive learning",
	Long: "Cadence tracks a learner's memory state per skill, schedules " +
		"per-activity repetition, and picks the next activity to present.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CADENCE_DB env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON activity catalog (defaults to the built-in sample)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then CADENCE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCatalog loads the catalog named by --catalog, falling back to
// the built-in sample.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return catalog.Load(p)
	}
	return catalog.Sample(), nil
}

// openService opens the store and wires the tracker service. The caller
// must invoke the returned cleanup.
func openService(cmd *cobra.Command) (*tracker.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	engine, err := memory.NewEngine(memory.DefaultParams())
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	svc := tracker.NewService(st.SkillStates(), st.ReviewEvents(), engine)
	return svc, func() { st.Close() }, nil
}
