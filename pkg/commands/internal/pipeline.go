// Package internal carries the processing pipeline shared by the build
// and stow families of commands.
package internal

import (
	"github.com/arcaartem/manage-dotfiles/pkg/config"
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/packages"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/processor"
	"github.com/arcaartem/manage-dotfiles/pkg/template"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
	"github.com/arcaartem/manage-dotfiles/pkg/vars"
)

// Target selects where the pipeline writes processed packages.
type Target string

const (
	// TargetBuild writes under <dotfiles root>/build.
	TargetBuild Target = "build"

	// TargetStaging writes under the staging tree handed to the linker.
	TargetStaging Target = "staging"
)

// PipelineOptions contains options for running the processing pipeline.
type PipelineOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	// Empty means auto-resolve (DOTFILES_ROOT, git root, cwd).
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// PackageNames is the list of packages to process. Empty means all
	// discovered packages.
	PackageNames []string

	// Target selects the output tree.
	Target Target

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// PipelineResult is what the pipeline hands back to its callers.
type PipelineResult struct {
	Paths      paths.Paths
	Config     *config.Config
	TargetRoot string
	Packages   []types.PackageResult

	// Missing lists requested names that did not resolve to a package.
	// They are reported, not fatal.
	Missing []string
}

// RunPipeline executes the processing pipeline: resolve paths, load
// config and variables, select packages, render and copy each one into
// the target tree.
func RunPipeline(opts PipelineOptions) (*PipelineResult, error) {
	logger := logging.GetLogger("commands.internal.pipeline")
	logger.Debug().
		Str("dotfilesRoot", opts.DotfilesRoot).
		Str("hostname", opts.Host.Name).
		Strs("packageNames", opts.PackageNames).
		Str("target", string(opts.Target)).
		Msg("Starting processing pipeline")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	// 1. Initialize paths
	pathsInstance, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}
	logger.Debug().
		Str("locations", paths.Describe(pathsInstance)).
		Msg("Resolved paths")

	// 2. Load app configuration
	cfg, err := config.Load(pathsInstance.ConfigDir())
	if err != nil {
		return nil, err
	}

	// 3. Load the variable mapping for this host
	mapping, err := vars.LoadForHost(fs, pathsInstance, opts.Host.Name)
	if err != nil {
		return nil, err
	}

	// 4. Select packages
	selected, missing, err := SelectPackages(fs, pathsInstance, opts.Host.Name,
		opts.PackageNames, cfg.Packages.Ignore)
	if err != nil {
		return nil, err
	}

	// 5. Process each package into the target tree
	targetRoot := pathsInstance.BuildDir()
	if opts.Target == TargetStaging {
		targetRoot = pathsInstance.StagingDir()
	}
	if err := fs.MkdirAll(targetRoot, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create target directory").
			WithDetail("path", targetRoot)
	}

	proc := processor.New(fs, template.NewRenderer(mapping, opts.Host), cfg.Template.Suffix)

	results := make([]types.PackageResult, 0, len(selected))
	for _, pkg := range selected {
		results = append(results, proc.Process(pkg, targetRoot))
	}

	logger.Info().
		Int("packages", len(results)).
		Int("missing", len(missing)).
		Str("targetRoot", targetRoot).
		Msg("Pipeline finished")

	return &PipelineResult{
		Paths:      pathsInstance,
		Config:     cfg,
		TargetRoot: targetRoot,
		Packages:   results,
		Missing:    missing,
	}, nil
}

// SelectPackages resolves the requested names, or discovers every
// package when none are given. A name that does not resolve is logged
// and returned in missing; it never aborts the selection.
func SelectPackages(fs types.FS, p paths.Paths, hostname string, names, ignore []string) ([]types.Package, []string, error) {
	logger := logging.GetLogger("commands.internal.select")

	if len(names) == 0 {
		pkgs, err := packages.Discover(fs, p, hostname, ignore)
		if err != nil {
			return nil, nil, err
		}
		return pkgs, nil, nil
	}

	var selected []types.Package
	var missing []string
	for _, name := range names {
		pkg, err := packages.Resolve(fs, p, hostname, name, ignore)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrPackageNotFound) {
				logger.Warn().
					Str("package", name).
					Str("hostname", hostname).
					Msg("Package not found, skipping")
				missing = append(missing, name)
				continue
			}
			return nil, nil, err
		}
		selected = append(selected, pkg)
	}
	return selected, missing, nil
}
