package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjpl/subjunctive-practice-sub006/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset practice progress for a user",
	Long:  "Delete the user's review schedule and performance window. The event log is kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		force, _ := cmd.Flags().GetBool("force")

		if !force {
			fmt.Fprintf(cmd.OutOrStdout(), "Reset all progress for %q? [y/N] ", userID)
			in := bufio.NewScanner(os.Stdin)
			if !in.Scan() || strings.ToLower(strings.TrimSpace(in.Text())) != "y" {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetUser(cmd.Context(), userID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Progress for %q reset.\n", userID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
