package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills <learner>",
	Short: "List a learner's skill states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := args[0]

		svc, cleanup, err := openService(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		states, err := svc.States(cmd.Context(), learnerID)
		if err != nil {
			return err
		}
		if len(states) == 0 {
			fmt.Printf("No skill state recorded for %s\n", learnerID)
			return nil
		}

		fmt.Printf("%-24s  %-14s  %8s  %6s  %6s  %s\n",
			"Skill", "Status", "Progress", "Reps", "Lapses", "Next review")
		fmt.Println(strings.Repeat("─", 84))

		for _, st := range states {
			next := "-"
			if st.Card.NextReviewAt != nil {
				next = st.Card.NextReviewAt.Format(time.RFC3339)
			}
			fmt.Printf("%-24s  %-14s  %7.0f%%  %6d  %6d  %s\n",
				st.SkillID, st.Status, st.Progress*100,
				st.Card.Reps, st.Card.Lapses, next)
		}

		fmt.Printf("\n%d skills\n", len(states))
		return nil
	},
}
