package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pinpack/internal/app"
	"go.trai.ch/pinpack/internal/core/domain"
	"go.trai.ch/pinpack/internal/engine/walker"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [project-dir] [-- fpm-args...]",
		Short: "Package a project and every pinned dependency it pulls in",
		Long: "Package a project and every pinned dependency it pulls in.\n\n" +
			"Arguments after -- are passed to fpm when the project itself is packaged.",
		Args: func(cmd *cobra.Command, args []string) error {
			if n := positional(cmd, args); len(n) > 1 {
				return zerr.With(zerr.New("accepts at most 1 project dir"), "received", len(n))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			opts := app.BuildOptions{ProjectDir: "."}
			if dirs := positional(cmd, args); len(dirs) == 1 {
				opts.ProjectDir = dirs[0]
			}
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				opts.ExtraArgs = args[dash:]
			}

			opts.VersionsFile, _ = flags.GetString("versions-file")
			opts.ConfigFile, _ = flags.GetString("config")
			opts.Version, _ = flags.GetString("version")
			opts.Iteration, _ = flags.GetString("iteration")
			opts.PinVersions, _ = flags.GetBool("pin-versions")
			opts.Target, _ = flags.GetString("target")
			opts.Filter.Include, _ = flags.GetStringArray("include")
			opts.Filter.Exclude, _ = flags.GetStringArray("exclude")
			opts.OutputDir, _ = flags.GetString("output-dir")
			opts.DeleteOld, _ = flags.GetBool("delete-old")
			opts.SkipSeen, _ = flags.GetBool("skip-seen")
			opts.MaxRounds, _ = flags.GetInt("max-rounds")

			report, err := c.app.Build(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), report.Artifact)
			return nil
		},
	}

	cmd.Flags().String("versions-file", domain.DefaultVersionsFile, "Buildout versions file holding the pins")
	cmd.Flags().String("config", "", "Settings file (default <project-dir>/pinpack.yaml)")
	cmd.Flags().String("version", "", "Version of the top-level package")
	cmd.Flags().String("iteration", "", "Iteration appended to the top-level version")
	cmd.Flags().Bool("pin-versions", false, "Write requirements.txt and make fpm depend on the exact versions")
	cmd.Flags().StringP("target", "t", "", "Artifact type: deb, rpm or wheel (default from settings, else deb)")
	cmd.Flags().StringArrayP("include", "i", nil, "Only package these dependencies (repeatable)")
	cmd.Flags().StringArrayP("exclude", "e", nil, "Never package these dependencies (repeatable)")
	cmd.Flags().String("output-dir", ".", "Directory the artifacts are written to")
	cmd.Flags().Bool("delete-old", false, "Delete existing artifacts of the target type before building")
	cmd.Flags().Bool("skip-seen", false, "Do not revisit a dependency already packaged in this run")
	cmd.Flags().Int("max-rounds", walker.DefaultMaxRounds, "Maximum number of dependency layers")

	return cmd
}

// positional returns the arguments before "--".
func positional(cmd *cobra.Command, args []string) []string {
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		return args[:dash]
	}
	return args
}
