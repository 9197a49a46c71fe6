package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pinpack/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the artifact ledger and generated scripts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scripts, _ := cmd.Flags().GetBool("scripts")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{}

			switch {
			case all:
				opts.Ledger = true
				opts.Scripts = true
			case scripts:
				opts.Scripts = true
			default:
				// Default behavior: forget built artifacts
				opts.Ledger = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("scripts", "s", false, "Remove the generated maintainer scripts")
	cmd.Flags().BoolP("all", "a", false, "Remove all pinpack state")

	return cmd
}
