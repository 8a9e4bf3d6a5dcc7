// Package linker drives the external symlink manager (GNU stow by
// default). Arguments are composed as an explicit vector and handed to
// os/exec; no shell is involved, so package names survive untouched.
package linker

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// Mode selects the linker action for an invocation.
type Mode string

const (
	// ModeLink creates symlinks, the linker's default action.
	ModeLink Mode = "link"

	// ModeUnlink removes previously created symlinks (-D).
	ModeUnlink Mode = "unlink"

	// ModeRelink removes and recreates symlinks in one pass (-R).
	ModeRelink Mode = "relink"
)

// flag returns the linker flag for the mode. ModeLink is the default
// action and needs no flag.
func (m Mode) flag() string {
	switch m {
	case ModeUnlink:
		return "-D"
	case ModeRelink:
		return "-R"
	default:
		return ""
	}
}

// Runner invokes the linker once per package against a staging tree.
type Runner struct {
	binary  string
	staging string
	target  string
	dryRun  bool
	logger  zerolog.Logger
}

// NewRunner creates a Runner. staging is the directory handed to the
// linker with -d and used as the working directory; target is the
// directory symlinks are created in.
func NewRunner(binary, staging, target string, dryRun bool) *Runner {
	return &Runner{
		binary:  binary,
		staging: staging,
		target:  target,
		dryRun:  dryRun,
		logger:  logging.GetLogger("linker"),
	}
}

// Argv composes the full argument vector for one package, binary first.
func (r *Runner) Argv(mode Mode, pkg string) []string {
	args := []string{r.binary, "--dotfiles", "-d", r.staging, "-t", r.target}
	if r.dryRun {
		args = append(args, "-n", "-v")
	}
	if flag := mode.flag(); flag != "" {
		args = append(args, flag)
	}
	return append(args, pkg)
}

// Run invokes the linker for each package in order. A non-zero exit for
// one package is recorded in its result and the remaining packages still
// run; only an unreachable staging tree aborts the whole call.
func (r *Runner) Run(ctx context.Context, mode Mode, packages []string) ([]types.LinkResult, error) {
	if _, err := os.Stat(r.staging); err != nil {
		return nil, errors.Wrap(err, errors.ErrTargetUnreachable, "cannot enter staging directory").
			WithDetail("path", r.staging)
	}

	results := make([]types.LinkResult, 0, len(packages))
	for _, pkg := range packages {
		results = append(results, r.runOne(ctx, mode, pkg))
	}
	return results, nil
}

// runOne executes a single linker invocation.
func (r *Runner) runOne(ctx context.Context, mode Mode, pkg string) types.LinkResult {
	argv := r.Argv(mode, pkg)
	result := types.LinkResult{
		Package: pkg,
		Args:    argv,
		DryRun:  r.dryRun,
	}

	logging.LogCommand(argv[0], argv[1:])
	r.logger.Info().
		Str("package", pkg).
		Str("mode", string(mode)).
		Bool("dryRun", r.dryRun).
		Msg("Invoking linker")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.staging
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result.Output = stdout.String() + stderr.String()

	if err != nil {
		r.logger.Error().
			Err(err).
			Str("package", pkg).
			Str("stdout", stdout.String()).
			Str("stderr", stderr.String()).
			Msg("Linker invocation failed")

		result.Err = errors.Wrapf(err, errors.ErrLinkerRun,
			"linker failed for package %s", pkg)
		return result
	}

	r.logger.Debug().
		Str("package", pkg).
		Msg("Linker invocation succeeded")

	return result
}
