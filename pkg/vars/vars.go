// Package vars loads the key=value variable files that feed template
// rendering. Variables keep their file order: merging overwrites values
// in place and appends keys never seen before.
package vars

import (
	"strings"
)

// Mapping is an ordered set of variables. A key keeps the position of
// its first insertion; overwriting only changes the value.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Set stores a value, appending the key when it is new.
func (m *Mapping) Set(key, value string) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it is present.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of variables.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Merge applies every variable from other, with other winning on
// conflicts. Positions follow the usual Set rules.
func (m *Mapping) Merge(other *Mapping) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		m.Set(k, other.values[k])
	}
}

// Parse reads newline-delimited key=value records. Each line is split on
// the first '='; lines without one and lines with an empty key are
// skipped. Values are taken verbatim, including empty values and values
// containing '='. A trailing carriage return is tolerated.
func Parse(data []byte) *Mapping {
	m := NewMapping()
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			continue
		}
		m.Set(line[:eq], line[eq+1:])
	}
	return m
}
