package initialize

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// starterTemplate seeds a new package with a file demonstrating the
// dot- prefix convention and variable substitution.
const starterTemplate = `# Starter file created by manage init. Rename or delete it.
#
# Files named dot-<name> are linked into the target as .<name>.
# Files ending in .tmpl have ` + "`${NAME}`" + ` references substituted from
# config/defaults and config/<hostname>.conf, then the suffix stripped.
#
# example = ${EXAMPLE_VALUE}
`

const starterFileName = "dot-examplerc.tmpl"

// InitPackageOptions defines the options for the InitPackage command.
type InitPackageOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// PackageName is the name of the new package to create.
	PackageName string

	// HostSpecific creates the package under the host tree for this
	// host instead of the common tree.
	HostSpecific bool

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// InitPackage creates a new package directory with a starter template.
func InitPackage(opts InitPackageOptions) (*types.InitResult, error) {
	log := logging.GetLogger("commands.init")
	log.Debug().Str("command", "InitPackage").Str("package", opts.PackageName).Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	// 1. Validate package name
	if opts.PackageName == "" {
		return nil, errors.New(errors.ErrInvalidInput, "package name cannot be empty")
	}
	if strings.ContainsAny(opts.PackageName, "/\\:*?\"<>|") {
		return nil, errors.Newf(errors.ErrInvalidInput,
			"package name contains invalid characters: %s", opts.PackageName)
	}

	pathsInstance, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	// 2. Build the package path and check it does not already exist
	scopeDir := pathsInstance.CommonPackagesDir()
	if opts.HostSpecific {
		scopeDir = pathsInstance.HostPackagesDir(opts.Host.Name)
	}
	packagePath := pathsInstance.PackagePath(scopeDir, opts.PackageName)

	if _, err := fs.Stat(packagePath); err == nil {
		return nil, errors.Newf(errors.ErrAlreadyExists, "package %q already exists", opts.PackageName).
			WithDetail("path", packagePath)
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot check package path").
			WithDetail("path", packagePath)
	}

	// 3. Create the directory and starter file
	if err := fs.MkdirAll(packagePath, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create package directory").
			WithDetail("path", packagePath)
	}

	starterPath := filepath.Join(packagePath, starterFileName)
	if err := fs.WriteFile(starterPath, []byte(starterTemplate), 0644); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "cannot write starter file").
			WithDetail("path", starterPath)
	}

	result := &types.InitResult{
		PackageName:  opts.PackageName,
		Path:         packagePath,
		FilesCreated: []string{starterFileName},
	}

	log.Info().
		Str("command", "InitPackage").
		Str("package", opts.PackageName).
		Str("path", packagePath).
		Msg("Command finished")
	return result, nil
}
