package layerconf

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Caster converts a resolved raw value (a string from the environment
// or a store, or the caller's default) into its final type. The zero
// value is Identity
type Caster struct {
	kind castKind
	fn   func(any) (any, error)
}

type castKind uint8

const (
	castIdentity castKind = iota
	castBoolean
	castCustom
)

// Identity returns the resolved value unchanged
var Identity = Caster{kind: castIdentity}

// Boolean applies string truthiness. The value is stringified first;
// the empty string is false, and any other string is matched
// case-insensitively against the token table: y, yes, t, true, on, 1
// are true; n, no, f, false, off, 0 are false; anything else is an
// error
var Boolean = Caster{kind: castBoolean}

// CastFunc wraps an arbitrary conversion as a Caster. Errors returned
// by fn are propagated to the caller unmodified
func CastFunc(fn func(any) (any, error)) Caster {
	return Caster{kind: castCustom, fn: fn}
}

// apply runs the conversion
func (c Caster) apply(v any) (any, error) {
	switch c.kind {
	case castBoolean:
		return parseTruthy(fmt.Sprint(v))
	case castCustom:
		return c.fn(v)
	default:
		return v, nil
	}
}

// parseTruthy implements the boolean token table
func parseTruthy(s string) (any, error) {
	if s == "" {
		return false, nil
	}
	switch strings.ToLower(s) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return nil, fmt.Errorf("invalid truth value %q", s)
}

// Int converts the resolved value to an int
func Int() Caster {
	return CastFunc(func(v any) (any, error) {
		if n, ok := v.(int); ok {
			return n, nil
		}
		return strconv.Atoi(fmt.Sprint(v))
	})
}

// Float64 converts the resolved value to a float64
func Float64() Caster {
	return CastFunc(func(v any) (any, error) {
		if f, ok := v.(float64); ok {
			return f, nil
		}
		return strconv.ParseFloat(fmt.Sprint(v), 64)
	})
}

// Duration converts the resolved value with time.ParseDuration
// (e.g. 250ms, 2s, 1h)
func Duration() Caster {
	return CastFunc(func(v any) (any, error) {
		if d, ok := v.(time.Duration); ok {
			return d, nil
		}
		return time.ParseDuration(fmt.Sprint(v))
	})
}

// URL converts the resolved value to a *url.URL and requires it to be
// absolute
func URL() Caster {
	return CastFunc(func(v any) (any, error) {
		if u, ok := v.(*url.URL); ok {
			return u, nil
		}
		s := fmt.Sprint(v)
		u, err := url.Parse(s)
		if err != nil {
			return nil, err
		}
		if !u.IsAbs() {
			return nil, fmt.Errorf("invalid absolute URL %q", s)
		}
		return u, nil
	})
}
