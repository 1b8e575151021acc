package layerconf

import (
	"errors"
	"fmt"
)

// UndefinedError reports an option that is not set in the environment,
// not present in the active store, and has no default
type UndefinedError struct {
	Option string
}

// Error implements the error interface
func (e *UndefinedError) Error() string {
	return fmt.Sprintf("%s not found. Declare it as an environment variable or define a default value", e.Option)
}

// IsUndefined reports whether err is an *UndefinedError
func IsUndefined(err error) bool {
	var e *UndefinedError
	return errors.As(err, &e)
}

// KeyError reports a direct store lookup for a key the store does not
// hold. Config guards Get behind Contains, so seeing one usually means
// a store was queried directly with an unchecked key
type KeyError struct {
	Key string
}

// Error implements the error interface
func (e *KeyError) Error() string { return fmt.Sprintf("key %q not found", e.Key) }

// IsKeyNotFound reports whether err is a *KeyError
func IsKeyNotFound(err error) bool {
	var e *KeyError
	return errors.As(err, &e)
}
