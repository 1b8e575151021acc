package layerconf

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
)

// options carries the shared knobs for stores, Config and Auto
type options struct {
	fs         afero.Fs
	env        Environ
	enc        encoding.Encoding
	log        zerolog.Logger
	searchPath string
}

func defaultOptions() options {
	return options{
		fs:  afero.NewOsFs(),
		env: OSEnviron{},
		log: zerolog.Nop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures stores, Config and Auto
type Option func(*options)

// WithFS overrides the filesystem used to read and discover
// configuration files. Tests typically pass an afero.MemMapFs
func WithFS(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// WithEnviron overrides the environment view consulted during
// resolution. The default reads the real process environment
func WithEnviron(env Environ) Option {
	return func(o *options) { o.env = env }
}

// WithEncoding sets the character encoding used to decode source
// files. The default reads them as UTF-8
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.enc = enc }
}

// WithLogger sets the logger for discovery and resolution debug
// events. The default discards them
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// SearchPath sets the directory where Auto begins its upward search.
// The default is the current working directory. Ignored by stores and
// Config, which take explicit paths
func SearchPath(dir string) Option {
	return func(o *options) { o.searchPath = dir }
}
