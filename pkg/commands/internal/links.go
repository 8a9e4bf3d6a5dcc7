package internal

import (
	"os"
	"sort"

	"github.com/arcaartem/manage-dotfiles/pkg/config"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// LinkTarget resolves where the linker creates symlinks: the configured
// target directory, or the user's home directory.
func LinkTarget(cfg *config.Config) (string, error) {
	if cfg.Linker.Target != "" {
		return paths.ExpandHome(cfg.Linker.Target), nil
	}

	home, err := paths.GetHomeDirectory()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTargetUnreachable, "cannot determine home directory")
	}
	return home, nil
}

// StagedPackages lists the package directories present under the
// staging tree, sorted by name. A missing staging tree yields an empty
// list.
func StagedPackages(fs types.FS, p paths.Paths) ([]string, error) {
	entries, err := fs.ReadDir(p.StagingDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read staging directory").
			WithDetail("path", p.StagingDir())
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
