package clean

import (
	"os"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// CleanOptions defines the options for the Clean command.
type CleanOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Staging also removes the staging tree. Links created from it are
	// left dangling until the next stow, so this is opt-in.
	Staging bool

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// Clean removes the build tree, and optionally the staging tree.
// Processing never deletes stale files, so this is the recovery path
// after renaming or removing package sources.
func Clean(opts CleanOptions) (*types.CleanResult, error) {
	log := logging.GetLogger("commands.clean")
	log.Debug().Str("command", "Clean").Bool("staging", opts.Staging).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pathsInstance, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	targets := []string{pathsInstance.BuildDir()}
	if opts.Staging {
		targets = append(targets, pathsInstance.StagingDir())
	}

	result := &types.CleanResult{}
	for _, dir := range targets {
		if _, err := fs.Stat(dir); err != nil {
			if os.IsNotExist(err) {
				log.Debug().Str("path", dir).Msg("Nothing to clean")
				continue
			}
			return result, errors.Wrap(err, errors.ErrFileAccess, "cannot check directory").
				WithDetail("path", dir)
		}

		if err := fs.RemoveAll(dir); err != nil {
			return result, errors.Wrap(err, errors.ErrFileWrite, "cannot remove directory").
				WithDetail("path", dir)
		}

		log.Info().Str("path", dir).Msg("Removed directory")
		result.Removed = append(result.Removed, dir)
	}

	log.Info().
		Str("command", "Clean").
		Int("removed", len(result.Removed)).
		Msg("Command finished")
	return result, nil
}
