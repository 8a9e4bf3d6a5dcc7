package types

import (
	"path/filepath"
)

// Scope identifies which tree a package was resolved from.
type Scope string

const (
	// ScopeCommon marks packages found under packages/common.
	ScopeCommon Scope = "common"

	// ScopeHostSpecific marks packages found under packages/host-specific/<hostname>.
	ScopeHostSpecific Scope = "host-specific"
)

// Package represents a directory of dotfiles to deploy
type Package struct {
	// Name is the package name (the directory name)
	Name string `json:"name"`

	// Path is the absolute path to the package directory
	Path string `json:"path"`

	// Scope records which tree the package was resolved from
	Scope Scope `json:"scope"`

	// Shadows is true when a host-specific package hides a common
	// package of the same name
	Shadows bool `json:"shadows,omitempty"`
}

// FilePath returns the full path to a file within the package
func (p *Package) FilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}
