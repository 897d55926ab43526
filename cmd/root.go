package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "subjunctive",
	Short: "Spanish subjunctive practice",
	Long:  "Subjunctive — terminal trainer for the Spanish subjunctive with spaced repetition and error-aware difficulty.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SUBJUNCTIVE_DB env var)")
	rootCmd.PersistentFlags().String("rules", "", "Path to a JSON rule file merged over the builtin conjugation table")
	rootCmd.PersistentFlags().String("user", "default", "User ID to track progress under")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SUBJUNCTIVE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadRuleTable builds the conjugation table: the builtin inventory,
// optionally extended by a --rules file.
func loadRuleTable(cmd *cobra.Command) (*conjugation.RuleTable, error) {
	data := conjugation.SeedTableData()
	if rulesPath, _ := cmd.Flags().GetString("rules"); rulesPath != "" {
		extra, err := conjugation.LoadFile(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules %s: %w", rulesPath, err)
		}
		data = conjugation.Merge(data, extra)
	}
	return conjugation.NewRuleTable(data)
}
