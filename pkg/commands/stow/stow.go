package stow

import (
	"context"

	"github.com/arcaartem/manage-dotfiles/pkg/commands/internal"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/linker"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// StowOptions defines the options for the Stow command.
type StowOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// PackageNames is a list of specific packages to stow. If empty,
	// all packages are stowed.
	PackageNames []string

	// Apply performs the linking for real. The default is a dry run
	// where the linker only reports what it would change.
	Apply bool

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// Stow renders and copies the selected packages into the staging tree,
// then invokes the linker once per staged package.
func Stow(opts StowOptions) (*types.StowResult, error) {
	log := logging.GetLogger("commands.stow")
	log.Debug().Str("command", "Stow").Bool("apply", opts.Apply).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pr, err := internal.RunPipeline(internal.PipelineOptions{
		DotfilesRoot: opts.DotfilesRoot,
		Host:         opts.Host,
		PackageNames: opts.PackageNames,
		Target:       internal.TargetStaging,
		FS:           fs,
	})
	if err != nil {
		log.Error().Err(err).Msg("Stow failed")
		return nil, err
	}

	target, err := internal.LinkTarget(pr.Config)
	if err != nil {
		return nil, err
	}

	var names []string
	if len(opts.PackageNames) > 0 {
		for _, res := range pr.Packages {
			if res.Err != nil {
				log.Warn().
					Str("package", res.Package.Name).
					Msg("Skipping link for package that failed to stage")
				continue
			}
			names = append(names, res.Package.Name)
		}
	} else {
		// Link the union of packages present in the staging tree, not
		// just what this run processed. A package staged earlier whose
		// source was since removed still needs its links maintained.
		names, err = internal.StagedPackages(fs, pr.Paths)
		if err != nil {
			return nil, err
		}
	}

	runner := linker.NewRunner(pr.Config.Linker.Binary, pr.TargetRoot, target, !opts.Apply)
	links, err := runner.Run(context.Background(), linker.ModeLink, names)
	if err != nil {
		log.Error().Err(err).Msg("Linker run failed")
		return nil, err
	}

	log.Info().
		Str("command", "Stow").
		Int("packages", len(pr.Packages)).
		Int("linked", len(links)).
		Bool("dryRun", !opts.Apply).
		Msg("Command finished")

	return &types.StowResult{
		Staging:  pr.TargetRoot,
		Target:   target,
		DryRun:   !opts.Apply,
		Packages: pr.Packages,
		Links:    links,
		Missing:  pr.Missing,
	}, nil
}
