package layerconf

import "os"

// Environ is a read-only view of the process environment
type Environ interface {
	// Lookup returns the value for key and whether the variable is set
	// at all; a variable set to the empty string reports true
	Lookup(key string) (string, bool)
}

// OSEnviron reads the real process environment
type OSEnviron struct{}

// Lookup returns the process environment variable key
func (OSEnviron) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// MapEnviron is a fixed in-memory Environ, useful in tests and for
// resolving against a frozen environment snapshot
type MapEnviron map[string]string

// Lookup returns the mapped value for key
func (m MapEnviron) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
