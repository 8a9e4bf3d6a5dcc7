package vars

import (
	"os"

	"github.com/arcaartem/manage-dotfiles/pkg/errors"
	"github.com/arcaartem/manage-dotfiles/pkg/logging"
	"github.com/arcaartem/manage-dotfiles/pkg/paths"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
)

// LoadForHost merges the variable sources for a host: config/defaults
// first, then config/<hostname>.conf, host values winning. A missing
// source file contributes nothing.
func LoadForHost(fs types.FS, p paths.Paths, hostname string) (*Mapping, error) {
	logger := logging.GetLogger("vars")

	merged := NewMapping()

	for _, path := range []string{p.DefaultsFile(), p.HostFile(hostname)} {
		data, err := fs.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Debug().Str("path", path).Msg("variable file not found, skipping")
				continue
			}
			return nil, errors.Wrapf(err, errors.ErrVarsLoad, "failed to read variable file %s", path)
		}

		m := Parse(data)
		merged.Merge(m)
		logger.Debug().Str("path", path).Int("count", m.Len()).Msg("loaded variables")
	}

	return merged, nil
}
