package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjunmb/cadence/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <learner>",
	Short: "Delete all scheduling state for a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("refusing to delete state for %q without --yes", learnerID)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.SkillStates().DeleteByLearner(cmd.Context(), learnerID)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d skill states for %s\n", n, learnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
