package unstow

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

// UnstowOptions defines the options for the Unstow command.
type UnstowOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// PackageNames is a list of specific packages to unstow. If empty,
	// every package present in the staging tree is unstowed.
	PackageNames []string

	// Apply removes the links for real. The default is a dry run.
	Apply bool

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// Unstow removes the symlinks for the selected packages. Nothing is
// re-rendered: the linker runs against the staging tree as it stands.
func Unstow(opts UnstowOptions) (*types.UnstowResult, error) {
	log := logging.GetLogger("commands.unstow")
	log.Debug().Str("command", "Unstow").Bool("apply", opts.Apply).Msg("Executing command")

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
	links, err := runner.Run(context.Background(), linker.ModeUnlink, names)
	if err != nil {
		log.Error().Err(err).Msg("Linker run failed")
		return nil, err
	}

	log.Info().
		Str("command", "Unstow").
		Int("unlinked", len(links)).
		Bool("dryRun", !opts.Apply).
		Msg("Command finished")

	return &types.UnstowResult{
		Staging: pathsInstance.StagingDir(),
		Target:  target,
		DryRun:  !opts.Apply,
		Links:   links,
	}, nil
}
