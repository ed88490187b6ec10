package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/paideia/internal/app"
	"github.com/abhisek/paideia/internal/scorer"
	"github.com/abhisek/paideia/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "paideia",
	Short: "Adaptive tutoring and recommendation engine",
	Long:  "Paideia — an adaptive tutoring engine that probes, grades and remediates concept by concept, and recommends what to study next.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PAIDEIA_DB env var)")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PAIDEIA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and wires the full engine. The scorer falls
// back to the deterministic mock when no provider is configured, so the
// CLI stays usable offline.
func openEngine(cmd *cobra.Command) (*app.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	grader, err := scorer.NewFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "scorer not configured:", err)
		fmt.Fprintln(os.Stderr, "answers will receive a neutral grade")
		grader = scorer.NewMockScorer()
	}

	return app.New(app.Options{
		Store:  st,
		Scorer: grader,
	}), nil
}
