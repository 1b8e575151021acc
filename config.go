package layerconf

import (
	"github.com/rs/zerolog"
)

// Config resolves options against the environment, a Store, and
// caller-supplied defaults. Precedence is fixed: environment first
// (even when set to the empty string), then the store, then Default
type Config struct {
	store Store
	env   Environ
	log   zerolog.Logger
}

// New returns a Config over store. A nil store behaves as Empty
func New(store Store, opts ...Option) *Config {
	o := buildOptions(opts)
	return newConfig(o, store)
}

func newConfig(o options, store Store) *Config {
	if store == nil {
		store = Empty{}
	}
	return &Config{store: store, env: o.env, log: o.log}
}

// getOptions carries per-lookup settings
type getOptions struct {
	def    any
	hasDef bool
	cast   Caster
}

// GetOption adjusts a single lookup
type GetOption func(*getOptions)

// Default supplies the value used when the option is set neither in
// the environment nor in the store. nil is a legitimate default;
// omitting Default entirely is what makes a missing option an error
func Default(v any) GetOption {
	return func(g *getOptions) {
		g.def = v
		g.hasDef = true
	}
}

// Cast sets the conversion applied to the resolved value. The default
// is Identity
func Cast(c Caster) GetOption {
	return func(g *getOptions) { g.cast = c }
}

// Get resolves option and applies the configured cast. It returns an
// *UndefinedError when the option is absent everywhere and no Default
// was given; cast errors are returned unmodified
func (c *Config) Get(option string, opts ...GetOption) (any, error) {
	var g getOptions
	for _, opt := range opts {
		opt(&g)
	}

	var value any
	switch {
	case c.envHas(option):
		value, _ = c.env.Lookup(option)
	case c.store.Contains(option):
		raw, err := c.store.Get(option)
		if err != nil {
			return nil, err
		}
		value = raw
	case g.hasDef:
		value = g.def
	default:
		c.log.Debug().Str("option", option).Msg("option undefined")
		return nil, &UndefinedError{Option: option}
	}

	return g.cast.apply(value)
}

// MustGet is Get that panics on any resolution or cast error
func (c *Config) MustGet(option string, opts ...GetOption) any {
	v, err := c.Get(option, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Config) envHas(option string) bool {
	_, ok := c.env.Lookup(option)
	return ok
}
