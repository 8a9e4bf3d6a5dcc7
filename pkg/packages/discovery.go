// Package packages discovers and resolves the deployable package
// directories of a dotfiles repository. A host-specific package shadows a
// common package of the same name entirely; the two are never merged.
package packages

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// Discover returns every deployable package for a host: the union of the
// host-specific tree and the common tree, each name exactly once, sorted
// by name. Missing scope directories contribute nothing.
func Discover(fs types.FS, p paths.Paths, hostname string, ignore []string) ([]types.Package, error) {
	logger := logging.GetLogger("packages.discovery")

	hostDir := p.HostPackagesDir(hostname)
	commonDir := p.CommonPackagesDir()

	hostNames, err := scopeEntries(fs, hostDir, ignore)
	if err != nil {
		return nil, err
	}
	commonNames, err := scopeEntries(fs, commonDir, ignore)
	if err != nil {
		return nil, err
	}

	var pkgs []types.Package
	for _, name := range hostNames {
		pkgs = append(pkgs, types.Package{
			Name:    name,
			Path:    p.PackagePath(hostDir, name),
			Scope:   types.ScopeHostSpecific,
			Shadows: contains(commonNames, name),
		})
	}
	for _, name := range commonNames {
		if contains(hostNames, name) {
			logger.Debug().
				Str("package", name).
				Str("hostname", hostname).
				Msg("Common package shadowed by host-specific package")
			continue
		}
		pkgs = append(pkgs, types.Package{
			Name:  name,
			Path:  p.PackagePath(commonDir, name),
			Scope: types.ScopeCommon,
		})
	}

	sort.Slice(pkgs, func(i, j int) bool {
		return pkgs[i].Name < pkgs[j].Name
	})

	logger.Info().Int("count", len(pkgs)).Str("hostname", hostname).Msg("Discovered packages")
	return pkgs, nil
}

// scopeEntries lists the package directory names inside one scope
// directory, skipping hidden names and ignore patterns. A missing scope
// directory yields no entries.
func scopeEntries(fs types.FS, dir string, ignore []string) ([]string, error) {
	logger := logging.GetLogger("packages.discovery")

	entries, err := fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("dir", dir).Msg("Scope directory not found, skipping")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read package directory").
			WithDetail("path", dir)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()

		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		if shouldIgnore(name, ignore) {
			logger.Trace().Str("name", name).Msg("Skipping ignored pattern")
			continue
		}

		if entry.IsDir() {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// shouldIgnore checks if a name matches any ignore pattern
func shouldIgnore(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func contains(names []string, target string) bool {
	for _, n := range names {
		if n == target {
			return true
		}
	}
	return false
}
