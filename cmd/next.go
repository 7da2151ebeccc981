package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next <learner>",
	Short: "Pick the next activity to present to a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		now, err := resolveNow(cmd)
		if err != nil {
			return err
		}

		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		cand, err := svc.NextActivity(cmd.Context(), learnerID, cat, now)
		if err != nil {
			return err
		}
		if cand == nil {
			fmt.Println("No activities available")
			return nil
		}

		fmt.Printf("%s  (skill %s, unit %s)\n", cand.ActivityName, cand.SkillID, cand.UnitID)
		fmt.Printf("  activity: %s\n", cand.ActivityID)
		fmt.Printf("  level:    %d\n", cand.Level)
		if cand.Due {
			fmt.Println("  due:      yes")
		} else {
			fmt.Printf("  due:      at %s\n", cand.NextReviewAt.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	nextCmd.Flags().String("at", "", "Selection time as RFC 3339 (defaults to now, UTC)")
}
