package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pinpack/internal/app"
	"go.trai.ch/pinpack/internal/core/domain"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps [project-dir]",
		Short: "Print the direct dependencies of a project with their pins",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.ResolveOptions{ProjectDir: "."}
			if len(args) == 1 {
				opts.ProjectDir = args[0]
			}
			opts.VersionsFile, _ = cmd.Flags().GetString("versions-file")
			opts.ConfigFile, _ = cmd.Flags().GetString("config")

			deps, err := c.app.Resolve(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, dep := range deps.Dependencies() {
				_, _ = fmt.Fprintln(out, dep.String())
			}
			return nil
		},
	}

	cmd.Flags().String("versions-file", domain.DefaultVersionsFile, "Buildout versions file holding the pins")
	cmd.Flags().String("config", "", "Settings file (default <project-dir>/pinpack.yaml)")

	return cmd
}
