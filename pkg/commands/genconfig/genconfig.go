package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arcaartem/manage-dotfiles/pkg/config"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// GenConfigOptions defines the options for the GenConfig command.
type GenConfigOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Write creates a commented starter config file instead of
	// printing the effective configuration.
	Write bool

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// GenConfig shows the effective configuration as TOML, or with Write
// set drops a fully commented starter file into the config directory.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	logger.Debug().Str("command", "GenConfig").Bool("write", opts.Write).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pathsInstance, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	if !opts.Write {
		cfg, err := config.Load(pathsInstance.ConfigDir())
		if err != nil {
			return nil, err
		}
		content, err := config.Marshal(cfg)
		if err != nil {
			return nil, err
		}
		return &types.GenConfigResult{ConfigContent: content}, nil
	}

	targetPath := filepath.Join(pathsInstance.ConfigDir(), "config.toml")
	if _, err := fs.Stat(targetPath); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "config file already exists: %s", targetPath)
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot check config path").
			WithDetail("path", targetPath)
	}

	if err := fs.MkdirAll(pathsInstance.ConfigDir(), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create config directory").
			WithDetail("path", pathsInstance.ConfigDir())
	}

	content := config.GenerateStarterContent()
	if err := fs.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "cannot write config file").
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written starter config")
	return &types.GenConfigResult{
		ConfigContent: content,
		Path:          targetPath,
		Written:       true,
	}, nil
}
