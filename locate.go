package layerconf

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// format couples a discovery filename with its store constructor
type format struct {
	name string
	open func(o options, path string) (Store, error)
}

// supported lists the recognized configuration files in priority
// order: when both exist in one directory, the sectioned format wins
var supported = []format{
	{"settings.ini", func(o options, p string) (Store, error) { return newIniFile(o, p) }},
	{".env", func(o options, p string) (Store, error) { return newEnvFile(o, p) }},
}

// findSource walks from dir toward the filesystem root and returns the
// first supported file found. Filesystem probe errors (permission
// denied and the like) count as "not here" and are never propagated
func findSource(fsys afero.Fs, dir string) (format, string, bool) {
	for {
		for _, f := range supported {
			p := filepath.Join(dir, f.name)
			if info, err := fsys.Stat(p); err == nil && info.Mode().IsRegular() {
				return f, p, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return format{}, "", false
		}
		dir = parent
	}
}
