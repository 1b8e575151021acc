package layerconf

import (
	"os"
	"path/filepath"
	"sync"
)

// Auto resolves options against an automatically discovered
// configuration source. Discovery runs on the first lookup only and
// the resulting Config is cached for the life of the Auto; concurrent
// first lookups are safe
type Auto struct {
	o    options
	once sync.Once
	cfg  *Config
}

// NewAuto returns an Auto. SearchPath sets where the upward search
// starts; unset, it starts in the current working directory
func NewAuto(opts ...Option) *Auto {
	return &Auto{o: buildOptions(opts)}
}

// Get resolves option with the same semantics as Config.Get,
// discovering the source first if needed
func (a *Auto) Get(option string, opts ...GetOption) (any, error) {
	a.once.Do(a.load)
	return a.cfg.Get(option, opts...)
}

// MustGet is Get that panics on any resolution or cast error
func (a *Auto) MustGet(option string, opts ...GetOption) any {
	a.once.Do(a.load)
	return a.cfg.MustGet(option, opts...)
}

// load locates and parses the configuration source. Every failure mode
// degrades to the Empty store; discovery never surfaces errors
func (a *Auto) load() {
	dir := a.o.searchPath
	if dir == "" {
		dir, _ = os.Getwd()
	}
	dir, err := filepath.Abs(dir)

	var store Store = Empty{}
	if err == nil {
		if f, path, ok := findSource(a.o.fs, dir); ok {
			s, err := f.open(a.o, path)
			if err != nil {
				a.o.log.Debug().Str("file", path).Err(err).
					Msg("configuration source unreadable, continuing without one")
			} else {
				store = s
				a.o.log.Debug().Str("file", path).Msg("configuration source discovered")
			}
		} else {
			a.o.log.Debug().Str("dir", dir).Msg("no configuration source found")
		}
	}

	a.cfg = newConfig(a.o, store)
}
