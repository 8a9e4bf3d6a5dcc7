package types

import "strings"

// Host is a snapshot of the machine identity and environment that a run
// operates against. It is captured once when a command starts and passed
// down explicitly, so nothing below the command layer reads ambient state.
type Host struct {
	// Name is the effective hostname (os.Hostname or the -H override)
	Name string

	// Environ holds the process environment at capture time
	Environ map[string]string
}

// NewHost builds a Host from a hostname and an environment in the
// "key=value" form returned by os.Environ.
func NewHost(name string, environ []string) Host {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return Host{Name: name, Environ: env}
}

// Getenv looks up a variable in the environment snapshot.
func (h Host) Getenv(key string) (string, bool) {
	v, ok := h.Environ[key]
	return v, ok
}
