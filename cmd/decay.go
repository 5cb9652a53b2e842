package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Run one staleness-decay pass over all focus scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		updated, err := rt.eng.DecaySweep(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Decayed %d stale focus scores\n", updated)
		return nil
	},
}
