package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due <user-id>",
	Short: "List lessons due for review, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		recs, err := rt.eng.DueReviews(cmd.Context(), args[0], limit)
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}
		for _, rec := range recs {
			fmt.Printf("%s  due %s  (%s, EF %.2f, interval %dd)\n",
				rec.LessonID, rec.NextReviewDate.Format("2006-01-02"),
				rec.Status, rec.EasinessFactor, rec.IntervalDays)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("limit", 20, "Maximum number of due lessons to list (0 for no cap)")
}
