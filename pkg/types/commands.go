package types

// BuildResult holds the result of the 'build' command.
type BuildResult struct {
	// TargetRoot is the directory the packages were written under
	TargetRoot string `json:"targetRoot"`

	Packages []PackageResult `json:"packages"`

	// Missing lists requested package names that could not be resolved
	Missing []string `json:"missing,omitempty"`
}

// StowResult holds the result of the 'stow' command.
type StowResult struct {
	// Staging is the tree the linker was pointed at with -d
	Staging string `json:"staging"`

	// Target is the directory symlinks are created in
	Target string `json:"target"`

	DryRun bool `json:"dryRun"`

	Packages []PackageResult `json:"packages"`
	Links    []LinkResult    `json:"links"`

	Missing []string `json:"missing,omitempty"`
}

// UnstowResult holds the result of the 'unstow' command.
type UnstowResult struct {
	Staging string       `json:"staging"`
	Target  string       `json:"target"`
	DryRun  bool         `json:"dryRun"`
	Links   []LinkResult `json:"links"`
}

// RestowResult holds the result of the 'restow' command.
type RestowResult struct {
	Staging string       `json:"staging"`
	Target  string       `json:"target"`
	DryRun  bool         `json:"dryRun"`
	Links   []LinkResult `json:"links"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Hostname string        `json:"hostname"`
	Packages []PackageInfo `json:"packages"`
}

// PackageInfo contains summary information about a single package.
type PackageInfo struct {
	Name    string `json:"name"`
	Scope   Scope  `json:"scope"`
	Path    string `json:"path"`
	Shadows bool   `json:"shadows,omitempty"`
}

// VarsResult holds the result of the 'vars' command.
type VarsResult struct {
	Hostname string `json:"hostname"`

	// Entries preserves definition order: defaults first, host
	// overrides in place
	Entries []VarEntry `json:"entries"`
}

// VarEntry is one effective variable binding.
type VarEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	PackageName  string   `json:"packageName"`
	Path         string   `json:"path"`
	FilesCreated []string `json:"filesCreated"`
}

// CleanResult holds the result of the 'clean' command.
type CleanResult struct {
	// Removed lists the directories that were deleted
	Removed []string `json:"removed"`
}

// GenConfigResult holds the result of the 'config' command.
type GenConfigResult struct {
	ConfigContent string `json:"configContent"`

	// Path is set when a starter file was written
	Path    string `json:"path,omitempty"`
	Written bool   `json:"written"`
}

// FailedLinks returns the subset of link results that carry an error.
func FailedLinks(links []LinkResult) []LinkResult {
	var failed []LinkResult
	for _, l := range links {
		if l.Err != nil {
			failed = append(failed, l)
		}
	}
	return failed
}
