package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <user-id> <lesson-id>",
	Short: "Record a learner's first completion of a lesson",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		rec, err := rt.eng.CompleteLesson(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Lesson %s marked %s, next review %s\n",
			rec.LessonID, rec.Status, rec.NextReviewDate.Format("2006-01-02"))
		return nil
	},
}
