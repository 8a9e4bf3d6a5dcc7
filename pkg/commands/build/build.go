package build

import (
	"github.com/arcaartem/manage-dotfiles/pkg/commands/internal"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// BuildOptions defines the options for the Build command.
type BuildOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// PackageNames is a list of specific packages to build. If empty,
	// all packages are built.
	PackageNames []string

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// Build renders and copies the selected packages into the build tree
// under the dotfiles root.
func Build(opts BuildOptions) (*types.BuildResult, error) {
	log := logging.GetLogger("commands.build")
	log.Debug().Str("command", "Build").Msg("Executing command")

	pr, err := internal.RunPipeline(internal.PipelineOptions{
		DotfilesRoot: opts.DotfilesRoot,
		Host:         opts.Host,
		PackageNames: opts.PackageNames,
		Target:       internal.TargetBuild,
		FS:           opts.FS,
	})
	if err != nil {
		log.Error().Err(err).Msg("Build failed")
		return nil, err
	}

	log.Info().
		Str("command", "Build").
		Int("packages", len(pr.Packages)).
		Str("targetRoot", pr.TargetRoot).
		Msg("Command finished")

	return &types.BuildResult{
		TargetRoot: pr.TargetRoot,
		Packages:   pr.Packages,
		Missing:    pr.Missing,
	}, nil
}
