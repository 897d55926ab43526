package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/bjpl/subjunctive-practice-sub006/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.UserStats(cmd.Context(), userID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sessions completed: %d\n", stats.Sessions)
		fmt.Fprintf(out, "Answers: %d (%.0f%% correct)\n", stats.Answered, stats.Accuracy()*100)

		if len(stats.ByCategory) > 0 {
			fmt.Fprintln(out, "\nError categories:")
			printCounts(cmd, stats.ByCategory)
		}
		if len(stats.ByTense) > 0 {
			fmt.Fprintln(out, "\nPractice by tense:")
			printCounts(cmd, stats.ByTense)
		}
		return nil
	},
}

func printCounts(cmd *cobra.Command, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %d\n", k, counts[k])
	}
}
