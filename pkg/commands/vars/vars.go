package vars

import (
	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/filesystem"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
	varsload "github.com/arcaartem/manage-dotfiles/pkg/vars"
)

// ShowVarsOptions defines the options for the ShowVars command.
type ShowVarsOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	DotfilesRoot string

	// Host carries the hostname and environment snapshot.
	Host types.Host

	// FS is the filesystem to operate on. Nil means the OS filesystem.
	FS types.FS
}

// ShowVars loads the effective variable mapping for the host: defaults
// first, host overrides applied in place, definition order preserved.
func ShowVars(opts ShowVarsOptions) (*types.VarsResult, error) {
	log := logging.GetLogger("commands.vars")
	log.Debug().Str("command", "ShowVars").Msg("Executing command")

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pathsInstance, err := paths.New(opts.DotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to initialize paths")
	}

	mapping, err := varsload.LoadForHost(fs, pathsInstance, opts.Host.Name)
	if err != nil {
		return nil, err
	}

	result := &types.VarsResult{Hostname: opts.Host.Name}
	for _, key := range mapping.Keys() {
		value, _ := mapping.Get(key)
		result.Entries = append(result.Entries, types.VarEntry{Key: key, Value: value})
	}

	log.Info().
		Str("command", "ShowVars").
		Int("varCount", len(result.Entries)).
		Msg("Command finished")
	return result, nil
}
