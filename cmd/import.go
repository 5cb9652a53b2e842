package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnloop/internal/content"
)

var importCmd = &cobra.Command{
	Use:   "import <catalog.json>",
	Short: "Validate and import a content catalog, replacing the stored one",
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

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.eng.ImportCatalog(cmd.Context(), cat); err != nil {
			return err
		}
		fmt.Printf("Imported %d subjects and %d lessons\n", len(cat.Subjects), len(cat.Lessons))
		return nil
	},
}
