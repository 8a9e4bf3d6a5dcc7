// Package paths provides centralized path handling for manage.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for dotfiles location
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvManageDataDir overrides the XDG data directory for manage
	EnvManageDataDir = "MANAGE_DATA_DIR"

	// EnvManageConfigDir overrides the XDG config directory for manage
	EnvManageConfigDir = "MANAGE_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
// IMPORTANT: These constants define the repository layout and are NOT
// user-configurable. They must remain consistent across installations so
// that the same dotfiles repository works everywhere. User-configurable
// settings live in pkg/config instead.
const (
	// ManageDirName is the directory name for manage-specific files
	ManageDirName = "manage-dotfiles"

	// VarsDirName is the variable file directory inside the dotfiles root
	VarsDirName = "config"

	// DefaultsFileName is the host-independent variable file
	DefaultsFileName = "defaults"

	// HostFileExt is the extension of per-host variable files
	HostFileExt = ".conf"

	// PackagesDirName is the package tree directory inside the dotfiles root
	PackagesDirName = "packages"

	// CommonDirName holds packages deployed on every host
	CommonDirName = "common"

	// HostSpecificDirName holds per-host package trees
	HostSpecificDirName = "host-specific"

	// BuildDirName is the local build output directory inside the dotfiles root
	BuildDirName = "build"

	// StagingDirName is the staging subdirectory under the data directory
	StagingDirName = "staging"

	// LogFileName is the name of the log file
	LogFileName = "manage.log"
)

// Paths provides centralized path management for manage
type Paths interface {
	DotfilesRoot() string
	UsedFallback() bool
	VarsDir() string
	DefaultsFile() string
	HostFile(hostname string) string
	PackagesDir() string
	CommonPackagesDir() string
	HostPackagesDir(hostname string) string
	PackagePath(scope, name string) string
	BuildDir() string
	DataDir() string
	ConfigDir() string
	StagingDir() string
	LogFilePath() string
	NormalizePath(path string) (string, error)
}

type paths struct {
	// dotfilesRoot is the root directory for the dotfiles repository
	dotfilesRoot string

	// xdgData is the XDG data directory
	xdgData string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given dotfiles root.
// If dotfilesRoot is empty, it will be determined from environment variables
// or defaults.
func New(dotfilesRoot string) (Paths, error) {
	p := &paths{}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = expandHome(dotfilesRoot)
		p.usedFallback = false
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvManageDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, ManageDirName)
	}

	if configDir := os.Getenv(EnvManageConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, ManageDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, ManageDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", ManageDirName)
	}
}

// findDotfilesRoot determines the dotfiles root using the following priority:
// 1. DOTFILES_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// The function returns:
// - string: The resolved dotfiles root path
// - bool: Whether the current working directory was used as fallback
// - error: Any error that occurred during resolution
func findDotfilesRoot() (string, bool, error) {
	if root := os.Getenv(EnvDotfilesRoot); root != "" {
		return expandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	// Fallback to current working directory with warning
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")

	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// DotfilesRoot returns the root directory for the dotfiles repository
func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// VarsDir returns the variable file directory inside the dotfiles root
func (p *paths) VarsDir() string {
	return filepath.Join(p.dotfilesRoot, VarsDirName)
}

// DefaultsFile returns the path to the host-independent variable file
func (p *paths) DefaultsFile() string {
	return filepath.Join(p.VarsDir(), DefaultsFileName)
}

// HostFile returns the path to the variable file for a specific host
func (p *paths) HostFile(hostname string) string {
	return filepath.Join(p.VarsDir(), hostname+HostFileExt)
}

// PackagesDir returns the package tree directory inside the dotfiles root
func (p *paths) PackagesDir() string {
	return filepath.Join(p.dotfilesRoot, PackagesDirName)
}

// CommonPackagesDir returns the directory of packages shared by all hosts
func (p *paths) CommonPackagesDir() string {
	return filepath.Join(p.PackagesDir(), CommonDirName)
}

// HostPackagesDir returns the package directory for a specific host
func (p *paths) HostPackagesDir(hostname string) string {
	return filepath.Join(p.PackagesDir(), HostSpecificDirName, hostname)
}

// PackagePath returns the path of a named package inside a scope directory.
// The scope argument is a directory produced by CommonPackagesDir or
// HostPackagesDir.
func (p *paths) PackagePath(scope, name string) string {
	return filepath.Join(scope, name)
}

// BuildDir returns the local build output directory
func (p *paths) BuildDir() string {
	return filepath.Join(p.dotfilesRoot, BuildDirName)
}

// DataDir returns the XDG data directory for manage
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for manage
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StagingDir returns the staging directory under the data directory
func (p *paths) StagingDir() string {
	return filepath.Join(p.xdgData, StagingDirName)
}

// LogFilePath returns the path to the manage log file
// Respects XDG_STATE_HOME if set
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// Describe returns a short human-readable summary of the main locations,
// used by verbose startup logging.
func Describe(p Paths) string {
	return fmt.Sprintf("root=%s build=%s staging=%s", p.DotfilesRoot(), p.BuildDir(), p.StagingDir())
}
