package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjunmb/cadence/internal/memory"
)

var reviewCmd = &cobra.Command{
	Use:   "review <learner> <skill> <activity> <again|hard|good|easy>",
	Short: "Record one graded attempt on an activity",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, skillID, activityID := args[0], args[1], args[2]

		grade, err := memory.ParseGrade(args[3])
		if err != nil {
			return err
		}

		var score *float64
		if cmd.Flags().Changed("score") {
			v, _ := cmd.Flags().GetFloat64("score")
			score = &v
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

		out, err := svc.RecordReview(cmd.Context(), learnerID, skillID, activityID, grade, score, now)
		if err != nil {
			return err
		}

		card := out.Skill.Card
		fmt.Printf("Recorded %s on %s (attempt %s)\n", grade, activityID, out.AttemptID)
		fmt.Printf("  skill status:   %s (progress %.0f%%)\n", out.Skill.Status, out.Skill.Progress*100)
		fmt.Printf("  memory:         stability %.2fd, difficulty %.1f, retrievability %.2f\n",
			card.Stability, card.Difficulty, card.Retrievability)
		fmt.Printf("  skill review:   %s\n", card.NextReviewAt.Format(time.RFC3339))
		fmt.Printf("  activity level: %d, next due %s\n",
			out.Activity.Level, out.Activity.NextReviewAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	reviewCmd.Flags().Float64("score", 0, "Raw score for the attempt, in [0, 1]")
	reviewCmd.Flags().String("at", "", "Attempt time as RFC 3339 (defaults to now, UTC)")
}

// resolveNow parses the --at flag, defaulting to the current UTC time.
func resolveNow(cmd *cobra.Command) (time.Time, error) {
	at, _ := cmd.Flags().GetString("at")
	if at == "" {
		return time.Now().UTC(), nil
	}
	now, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --at: %w", err)
	}
	return now.UTC(), nil
}
