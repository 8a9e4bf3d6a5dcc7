// Package processor materializes a package into a target tree: template
// files are rendered with their suffix stripped, everything else is
// copied byte-for-byte. Failures are contained per file so one broken
// template never blocks its siblings.
package processor

import (
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/template"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// Processor writes processed package contents under a target root.
type Processor struct {
	fs       types.FS
	renderer *template.Renderer
	suffix   string
	logger   zerolog.Logger
}

// New creates a Processor. suffix marks template files; it must be
// non-empty.
func New(fs types.FS, renderer *template.Renderer, suffix string) *Processor {
	return &Processor{
		fs:       fs,
		renderer: renderer,
		suffix:   suffix,
		logger:   logging.GetLogger("processor"),
	}
}

// Process walks the package directory and writes every file under
// targetRoot/<package-name>/. Existing destination files are
// overwritten; files no longer present in the source are left alone.
func (p *Processor) Process(pkg types.Package, targetRoot string) types.PackageResult {
	result := types.PackageResult{Package: pkg}
	destBase := filepath.Join(targetRoot, pkg.Name)

	p.logger.Debug().
		Str("package", pkg.Name).
		Str("source", pkg.Path).
		Str("target", destBase).
		Msg("Processing package")

	p.processDir(pkg.Path, "", destBase, &result)

	if failed := result.FailedFiles(); len(failed) > 0 {
		p.logger.Warn().
			Str("package", pkg.Name).
			Int("failed", len(failed)).
			Int("total", len(result.Files)).
			Msg("Package processed with failures")
	}

	return result
}

// processDir handles one directory level. rel is the path of the
// directory relative to the package root, empty for the root itself.
func (p *Processor) processDir(pkgRoot, rel, destBase string, result *types.PackageResult) {
	entries, err := p.fs.ReadDir(filepath.Join(pkgRoot, rel))
	if err != nil {
		if rel == "" {
			result.Err = errors.Wrap(err, errors.ErrPackageAccess, "cannot read package directory").
				WithDetail("path", pkgRoot)
			return
		}
		result.Files = append(result.Files, types.FileResult{
			RelPath: rel,
			Err: errors.Wrap(err, errors.ErrFileAccess, "cannot read directory").
				WithDetail("path", filepath.Join(pkgRoot, rel)),
		})
		return
	}

	for _, entry := range entries {
		entryRel := filepath.Join(rel, entry.Name())

		if entry.IsDir() {
			p.processDir(pkgRoot, entryRel, destBase, result)
			continue
		}

		if !entry.Type().IsRegular() {
			p.logger.Debug().Str("path", entryRel).Msg("Skipping irregular file")
			continue
		}

		result.Files = append(result.Files, p.processFile(pkgRoot, entryRel, destBase))
	}
}

// processFile renders or copies a single file.
func (p *Processor) processFile(pkgRoot, rel, destBase string) types.FileResult {
	sourcePath := filepath.Join(pkgRoot, rel)

	destRel := rel
	action := types.ActionCopied
	base := filepath.Base(rel)
	// A file named exactly the suffix would render to an empty name;
	// it is copied verbatim instead.
	if strings.HasSuffix(base, p.suffix) && base != p.suffix {
		destRel = strings.TrimSuffix(rel, p.suffix)
		action = types.ActionRendered
	}

	res := types.FileResult{
		RelPath: rel,
		Target:  filepath.Join(destBase, destRel),
		Action:  action,
	}

	info, err := p.fs.Stat(sourcePath)
	if err != nil {
		res.Err = errors.Wrap(err, errors.ErrFileAccess, "cannot stat source file").
			WithDetail("path", sourcePath)
		p.logFileFailure(res)
		return res
	}

	data, err := p.fs.ReadFile(sourcePath)
	if err != nil {
		res.Err = errors.Wrap(err, errors.ErrFileAccess, "cannot read source file").
			WithDetail("path", sourcePath)
		p.logFileFailure(res)
		return res
	}

	if action == types.ActionRendered {
		data, err = p.renderer.Render(data)
		if err != nil {
			res.Err = errors.Wrapf(err, errors.ErrTemplateRender, "failed to render %s", rel)
			p.logFileFailure(res)
			return res
		}
	}

	if err := p.fs.MkdirAll(filepath.Dir(res.Target), 0755); err != nil {
		res.Err = errors.Wrap(err, errors.ErrDirCreate, "cannot create target directory").
			WithDetail("path", filepath.Dir(res.Target))
		p.logFileFailure(res)
		return res
	}

	if err := p.fs.WriteFile(res.Target, data, permFor(info)); err != nil {
		res.Err = errors.Wrap(err, errors.ErrFileWrite, "cannot write target file").
			WithDetail("path", res.Target)
		p.logFileFailure(res)
		return res
	}

	p.logger.Trace().
		Str("source", rel).
		Str("target", res.Target).
		Str("action", string(res.Action)).
		Msg("Processed file")

	return res
}

func (p *Processor) logFileFailure(res types.FileResult) {
	p.logger.Warn().
		Err(res.Err).
		Str("file", res.RelPath).
		Msg("Failed to process file, continuing")
}

// permFor keeps the source permission bits on the destination.
func permFor(info iofs.FileInfo) iofs.FileMode {
	return info.Mode().Perm()
}
