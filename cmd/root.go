package cmd

import (
	"github.com/fistbump/fistbump/internal/domain"
	"github.com/fistbump/fistbump/internal/orchestrator"
	"github.com/fistbump/fistbump/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCmd creates the root command carrying all bump flags.
func NewRootCmd(orch *orchestrator.BumpOrchestrator) *cobra.Command {
	var (
		bumpMajor  bool
		bumpMinor  bool
		bumpPatch  bool
		bumpPre    bool
		setVersion string
		force      bool
		dryRun     bool
		check      bool
		push       bool
		release    bool
	)
	cmd := &cobra.Command{
		Use:   "fistbump",
		Short: "Bump the semantic version of a git repository",
		Long: `fistbump reads the current version from the latest git tag, computes a
new version for the requested bump, rewrites version-bearing files, and
commits and tags the result after an interactive confirmation.`,
		Version:       version.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := orchestrator.BumpConfig{
				Request: domain.BumpRequest{
					Major:      bumpMajor,
					Minor:      bumpMinor,
					Patch:      bumpPatch,
					Prerelease: bumpPre,
					SetVersion: setVersion,
				},
				Force:   force,
				DryRun:  dryRun,
				Check:   check,
				Push:    push || release,
				Release: release,
			}
			return orch.Execute(cmd.Context(), cfg)
		},
	}
	cmd.Flags().BoolVar(&bumpMajor, "major", false, "Bump major version")
	cmd.Flags().BoolVar(&bumpMinor, "minor", false, "Bump minor version")
	cmd.Flags().BoolVar(&bumpPatch, "patch", false, "Bump patch version")
	cmd.Flags().BoolVar(&bumpPre, "pre", false,
		"Create a pre-release version. Changes will NOT be committed or tagged")
	cmd.Flags().StringVar(&setVersion, "set-version", "",
		"Set an explicit version instead of bumping")
	cmd.Flags().BoolVar(&force, "force", false,
		"Force the modifications even if the working directory is not clean")
	cmd.Flags().BoolVar(&dryRun, "dry", false,
		"Dry run. Do not modify anything, just show what would be done")
	cmd.Flags().BoolVar(&check, "check", false,
		"Check that the tree is clean and the current commit carries a release tag")
	cmd.Flags().BoolVar(&push, "push", false, "Push the created tag to origin")
	cmd.Flags().BoolVar(&release, "release", false,
		"Create a GitHub release for the new tag (implies --push)")
	cmd.MarkFlagsMutuallyExclusive("major", "minor", "patch", "pre", "set-version")
	return cmd
}
