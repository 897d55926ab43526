package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjpl/subjunctive-practice-sub006/internal/scheduler"
	"github.com/bjpl/subjunctive-practice-sub006/internal/store"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List review items due for practice",
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

		items, err := st.Repository().LoadReviewItems(cmd.Context(), userID)
		if err != nil {
			return err
		}
		due := scheduler.DueItems(items, time.Now())

		out := cmd.OutOrStdout()
		if len(due) == 0 {
			fmt.Fprintln(out, "Nothing due. Run `subjunctive practice` to learn new forms.")
			return nil
		}
		fmt.Fprintf(out, "%d item(s) due:\n", len(due))
		for _, it := range due {
			fmt.Fprintf(out, "  %-12s %-28s %-12s due %s (ease %.2f)\n",
				it.Key.Infinitive,
				it.Key.Tense.DisplayName(),
				it.Key.Person.DisplayName(),
				it.DueDate.Format("2006-01-02"),
				it.EaseFactor,
			)
		}
		return nil
	},
}
