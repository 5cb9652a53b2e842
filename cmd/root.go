package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnloop/internal/engine"
	"github.com/abhisek/learnloop/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnloop",
	Short: "Adaptive learning path engine",
	Long:  "LearnLoop — backend engine that decides which lesson each learner should see next, combining prerequisite ordering, spaced repetition, and recent interaction signal.",
}

func Execute() error {
	// A missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNLOOP_DB env var)")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(decayCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// runtime bundles the per-invocation store, engine, and logger.
type runtime struct {
	st  *store.Store
	eng *engine.Engine
	log *zap.Logger
}

func (r *runtime) Close() {
	_ = r.log.Sync()
	_ = r.st.Close()
}

// openRuntime opens the store and wires the engine for one command.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log, err := zap.NewProduction()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build logger: %w", err)
	}
	eng := engine.New(st.ContentRepo(), st.ProgressRepo(), st.CognitiveRepo(), st.EventRepo(), log, nil)
	return &runtime{st: st, eng: eng, log: log}, nil
}
