package packages

import (
	"fmt"
	"os"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// suggestionMaxDistance bounds how far a "did you mean" candidate may be
// from the requested name.
const suggestionMaxDistance = 2

// Resolve finds the directory for an exactly named package. The
// host-specific tree is consulted first and shadows the common tree
// entirely. Resolution is never fuzzy; a near-miss only decorates the
// not-found error with a suggestion.
func Resolve(fs types.FS, p paths.Paths, hostname, name string, ignore []string) (types.Package, error) {
	hostPath := p.PackagePath(p.HostPackagesDir(hostname), name)
	commonPath := p.PackagePath(p.CommonPackagesDir(), name)

	hostExists, err := isDir(fs, hostPath)
	if err != nil {
		return types.Package{}, errors.Wrap(err, errors.ErrPackageAccess, "cannot access package directory").
			WithDetail("path", hostPath)
	}
	commonExists, err := isDir(fs, commonPath)
	if err != nil {
		return types.Package{}, errors.Wrap(err, errors.ErrPackageAccess, "cannot access package directory").
			WithDetail("path", commonPath)
	}

	if hostExists {
		return types.Package{
			Name:    name,
			Path:    hostPath,
			Scope:   types.ScopeHostSpecific,
			Shadows: commonExists,
		}, nil
	}
	if commonExists {
		return types.Package{
			Name:  name,
			Path:  commonPath,
			Scope: types.ScopeCommon,
		}, nil
	}

	msg := fmt.Sprintf("package %q not found", name)
	notFound := errors.New(errors.ErrPackageNotFound, msg).
		WithDetail("package", name).
		WithDetail("hostname", hostname)
	if suggestion := suggest(fs, p, hostname, name, ignore); suggestion != "" {
		notFound.Message = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
		notFound = notFound.WithDetail("suggestion", suggestion)
	}
	return types.Package{}, notFound
}

// isDir reports whether path exists and is a directory. Errors other
// than non-existence are returned to the caller.
func isDir(fs types.FS, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// suggest returns the closest known package name within the distance
// bound, or empty when nothing is close enough.
func suggest(fs types.FS, p paths.Paths, hostname, name string, ignore []string) string {
	pkgs, err := Discover(fs, p, hostname, ignore)
	if err != nil {
		return ""
	}

	best := ""
	bestDistance := suggestionMaxDistance + 1
	for _, pkg := range pkgs {
		if d := fuzzy.LevenshteinDistance(name, pkg.Name); d < bestDistance {
			best = pkg.Name
			bestDistance = d
		}
	}
	return best
}
