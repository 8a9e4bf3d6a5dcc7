package restow

import (
	"context"

	"github.com/arcaartem/manage-dotfiles/pkg/commands/internal"
	"github.com/arcaartem/manage-dotfiles/pkg/config"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/linker"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// RestowOptions defines the options for the Restow command.
type RestowOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// PackageNames is a list of specific packages to restow. If empty,
	// every package present in the staging tree is restowed.
	PackageNames []string

	// Apply relinks for real. The default is a dry run.
	Apply bool

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// Restow removes and recreates the symlinks for the selected packages
// in one linker pass, pruning links whose staged files are gone.
// Nothing is re-rendered; run build or stow first to refresh contents.
func Restow(opts RestowOptions) (*types.RestowResult, error) {
	log := logging.GetLogger("commands.restow")
	log.Debug().Str("command", "Restow").Bool("apply", opts.Apply).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pathsInstance, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	cfg, err := config.Load(pathsInstance.ConfigDir())
	if err != nil {
		return nil, err
	}

	target, err := internal.LinkTarget(cfg)
	if err != nil {
		return nil, err
	}

	names := opts.PackageNames
	if len(names) == 0 {
		names, err = internal.StagedPackages(fs, pathsInstance)
		if err != nil {
			return nil, err
		}
	}

	runner := linker.NewRunner(cfg.Linker.Binary, pathsInstance.StagingDir(), target, !opts.Apply)
	links, err := runner.Run(context.Background(), linker.ModeRelink, names)
	if err != nil {
		log.Error().Err(err).Msg("Linker run failed")
		return nil, err
	}

	log.Info().
		Str("command", "Restow").
		Int("relinked", len(links)).
		Bool("dryRun", !opts.Apply).
		Msg("Command finished")

	return &types.RestowResult{
		Staging: pathsInstance.StagingDir(),
		Target:  target,
		DryRun:  !opts.Apply,
		Links:   links,
	}, nil
}
