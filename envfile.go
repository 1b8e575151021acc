package layerconf

import "strings"

// EnvFile is a Store backed by a flat KEY=VALUE file, conventionally
// named .env. The file is read once at construction
type EnvFile struct {
	env  Environ
	data map[string]string
}

// NewEnvFile parses the file at path and returns the store.
// Blank lines, lines whose first non-whitespace character is '#', and
// lines without '=' are skipped. Each retained line is split at the
// first '=', both sides trimmed; a value of length two or more whose
// first and last characters are the same quote (' or ") has exactly
// that outer pair stripped, interior quotes untouched. Later lines
// overwrite earlier ones for the same key
func NewEnvFile(path string, opts ...Option) (*EnvFile, error) {
	return newEnvFile(buildOptions(opts), path)
}

func newEnvFile(o options, path string) (*EnvFile, error) {
	text, err := readSource(o, path)
	if err != nil {
		return nil, err
	}

	s := &EnvFile{env: o.env, data: make(map[string]string)}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || !strings.Contains(line, "=") {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if len(v) >= 2 && v[0] == v[len(v)-1] && (v[0] == '\'' || v[0] == '"') {
			// outermost pair only; interior quotes stay put
			v = v[1 : len(v)-1]
		}
		s.data[k] = v
	}
	return s, nil
}

// Contains reports whether key is set in the environment or defined in
// the parsed file
func (s *EnvFile) Contains(key string) bool {
	if _, ok := s.env.Lookup(key); ok {
		return true
	}
	_, ok := s.data[key]
	return ok
}

// Get returns the parsed value for key, or a *KeyError if the file did
// not define it
func (s *EnvFile) Get(key string) (string, error) {
	v, ok := s.data[key]
	if !ok {
		return "", &KeyError{Key: key}
	}
	return v, nil
}
