package layerconf

import (
	"github.com/spf13/afero"
)

// Store is a read-only, string-valued key lookup backed by a single
// configuration source. Implementations parse their source once at
// construction and are immutable afterwards
type Store interface {
	// Contains reports whether key is resolvable through this store,
	// including via the process environment
	Contains(key string) bool

	// Get returns the raw string for key, or a *KeyError if the store
	// itself does not hold it
	Get(key string) (string, error)
}

// Empty is the terminal Store holding no values. It is what Auto falls
// back to when discovery finds nothing
type Empty struct{}

// Contains always reports false
func (Empty) Contains(string) bool { return false }

// Get always returns a *KeyError
func (Empty) Get(key string) (string, error) { return "", &KeyError{Key: key} }

// readSource reads and decodes a source file in one shot
func readSource(o options, path string) (string, error) {
	raw, err := afero.ReadFile(o.fs, path)
	if err != nil {
		return "", err
	}
	if o.enc != nil {
		raw, err = o.enc.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
	}
	return string(raw), nil
}
