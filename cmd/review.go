package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <user-id> <lesson-id> <quality>",
	Short: "Submit a recall-quality score (0-5) for a reviewed lesson",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("quality must be a number in [0, 5]: %w", err)
		}

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		rec, err := rt.eng.SubmitReview(cmd.Context(), args[0], args[1], quality)
		if err != nil {
			return err
		}
		fmt.Printf("Lesson %s: %s, EF %.2f, repetition %d, interval %dd, next review %s\n",
			rec.LessonID, rec.Status, rec.EasinessFactor, rec.Repetitions,
			rec.IntervalDays, rec.NextReviewDate.Format("2006-01-02"))
		return nil
	},
}
