package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/subjectgraph"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Check a content catalog without touching the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		cat, err := content.ParseCatalog(f)
		if err != nil {
			return fmt.Errorf("parse catalog: %w", err)
		}
		if err := content.ValidateCatalog(cat); err != nil {
			return err
		}
		if err := subjectgraph.Validate(cat.Subjects); err != nil {
			return err
		}
		fmt.Printf("OK: %d subjects, %d lessons\n", len(cat.Subjects), len(cat.Lessons))
		return nil
	},
}
