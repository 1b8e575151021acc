package layerconf

import (
	"fmt"
	"strings"
)

// Section is the fixed section name consulted by IniFile
const Section = "settings"

// maxInterpolationDepth bounds chained %(name)s references
const maxInterpolationDepth = 10

// IniFile is a Store backed by a sectioned key=value file,
// conventionally named settings.ini. Only the [settings] section is
// consulted. Values may reference sibling keys with %(name)s and spell
// a literal percent sign as %%
type IniFile struct {
	env     Environ
	section map[string]string // raw values, interpolated on Get
}

// NewIniFile parses the file at path and returns the store.
// Blank lines and lines starting with '#' or ';' are skipped; KEY=VALUE
// and KEY: VALUE pairs are accepted with surrounding whitespace trimmed.
// Keys outside [settings] are ignored
func NewIniFile(path string, opts ...Option) (*IniFile, error) {
	return newIniFile(buildOptions(opts), path)
}

func newIniFile(o options, path string) (*IniFile, error) {
	text, err := readSource(o, path)
	if err != nil {
		return nil, err
	}

	s := &IniFile{env: o.env, section: make(map[string]string)}
	current := ""
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		if line[0] == '[' {
			if line[len(line)-1] != ']' {
				return nil, fmt.Errorf("%s:%d: malformed section header %q", path, n+1, line)
			}
			current = line[1 : len(line)-1]
			continue
		}
		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			return nil, fmt.Errorf("%s:%d: expected key=value, got %q", path, n+1, line)
		}
		if current == Section {
			k := strings.TrimSpace(line[:sep])
			v := strings.TrimSpace(line[sep+1:])
			s.section[k] = v
		}
	}
	return s, nil
}

// Contains reports whether key is set in the environment or defined in
// the [settings] section
func (s *IniFile) Contains(key string) bool {
	if _, ok := s.env.Lookup(key); ok {
		return true
	}
	_, ok := s.section[key]
	return ok
}

// Get returns the interpolated value for key, or a *KeyError if the
// section does not define it. Interpolation failures (dangling
// references, stray '%') are errors, never placeholders
func (s *IniFile) Get(key string) (string, error) {
	raw, ok := s.section[key]
	if !ok {
		return "", &KeyError{Key: key}
	}
	return s.interpolate(raw, 0)
}

// interpolate expands %(name)s references against sibling keys and
// unescapes %% to %
func (s *IniFile) interpolate(value string, depth int) (string, error) {
	if depth > maxInterpolationDepth {
		return "", fmt.Errorf("interpolation depth exceeded in %q", value)
	}
	var b strings.Builder
	for i := 0; i < len(value); {
		if value[i] != '%' {
			b.WriteByte(value[i])
			i++
			continue
		}
		if i+1 >= len(value) {
			return "", fmt.Errorf("'%%' must be followed by '%%' or '(' in %q", value)
		}
		switch value[i+1] {
		case '%':
			b.WriteByte('%')
			i += 2
		case '(':
			end := strings.IndexByte(value[i+2:], ')')
			if end < 0 || i+2+end+1 >= len(value) || value[i+2+end+1] != 's' {
				return "", fmt.Errorf("bad interpolation variable reference %q", value[i:])
			}
			name := value[i+2 : i+2+end]
			ref, ok := s.section[name]
			if !ok {
				return "", fmt.Errorf("interpolation reference %q not found", name)
			}
			expanded, err := s.interpolate(ref, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			i += end + 4
		default:
			return "", fmt.Errorf("'%%' must be followed by '%%' or '(' in %q", value)
		}
	}
	return b.String(), nil
}
