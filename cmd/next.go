package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next <user-id>",
	Short: "Recommend the next lesson for a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		rec, err := rt.eng.NextLesson(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if rec.AllCompleted {
			fmt.Println(rec.Rationale)
			return nil
		}
		fmt.Printf("Subject: %s (%s)\n", rec.SubjectTitle, rec.SubjectID)
		fmt.Printf("Lesson:  %s (%s)\n", rec.LessonTitle, rec.LessonID)
		fmt.Printf("Why:     %s\n", rec.Rationale)
		if rec.Degraded {
			fmt.Println("Note:    served in fallback mode; check the subject graph for authoring errors")
		}
		return nil
	},
}
