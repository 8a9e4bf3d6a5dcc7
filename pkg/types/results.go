package types

// FileAction describes what the processor did with a source file.
type FileAction string

const (
	// ActionRendered means the file matched the template suffix and was
	// rendered with variable substitution.
	ActionRendered FileAction = "rendered"

	// ActionCopied means the file was copied byte-for-byte.
	ActionCopied FileAction = "copied"
)

// FileResult records the outcome for a single source file.
type FileResult struct {
	// RelPath is the file path relative to the package directory
	RelPath string `json:"relPath"`

	// Target is the absolute destination path
	Target string `json:"target"`

	Action FileAction `json:"action"`

	// Err is set when this file failed; siblings are unaffected
	Err error `json:"-"`
}

// PackageResult aggregates the outcomes for one processed package.
type PackageResult struct {
	Package Package      `json:"package"`
	Files   []FileResult `json:"files"`

	// Err is set when the package could not be processed at all
	Err error `json:"-"`
}

// FailedFiles returns the subset of file results that carry an error.
func (r *PackageResult) FailedFiles() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// LinkResult records a single linker invocation for one package.
type LinkResult struct {
	// Package is the package name handed to the linker
	Package string `json:"package"`

	// Args is the full argument vector, for logging and display
	Args []string `json:"args"`

	// Output is the combined stdout and stderr of the run
	Output string `json:"output,omitempty"`

	DryRun bool `json:"dryRun"`

	// Err is set when the linker exited non-zero or could not run
	Err error `json:"-"`
}
