package list

import (
	"github.com/arcaartem/manage-dotfiles/pkg/config"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/packages"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// ListPackagesOptions defines the options for the ListPackages command.
type ListPackagesOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// ListPackages finds every package that would deploy for the host:
// host-specific packages plus the common packages they do not shadow.
func ListPackages(opts ListPackagesOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "ListPackages").Msg("Executing command")

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

	pkgs, err := packages.Discover(fs, pathsInstance, opts.Host.Name, cfg.Packages.Ignore)
	if err != nil {
		return nil, err
	}

	result := &types.ListResult{
		Hostname: opts.Host.Name,
		Packages: make([]types.PackageInfo, len(pkgs)),
	}
	for i, pkg := range pkgs {
		result.Packages[i] = types.PackageInfo{
			Name:    pkg.Name,
			Scope:   pkg.Scope,
			Path:    pkg.Path,
			Shadows: pkg.Shadows,
		}
	}

	log.Info().
		Str("command", "ListPackages").
		Int("packageCount", len(result.Packages)).
		Msg("Command finished")
	return result, nil
}
