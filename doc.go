// Package layerconf resolves named configuration options from layered
// sources: process environment variables first, then a discovered
// configuration file (.env or settings.ini), then a caller-supplied
// default.
//
// The zero-setup entry point is Auto, which on the first lookup walks
// upward from a starting directory until it finds a supported file and
// caches the result for the life of the instance:
//
//	cfg := layerconf.NewAuto(layerconf.SearchPath("."))
//	debug, err := cfg.Get("DEBUG",
//		layerconf.Default(false),
//		layerconf.Cast(layerconf.Boolean))
//
// Stores can also be built explicitly and wrapped in a Config:
//
//	store, err := layerconf.NewEnvFile(".env")
//	cfg := layerconf.New(store)
//
// Environment variables always win over file-sourced values. An option
// absent everywhere with no Default yields an *UndefinedError. Cast
// failures are returned unmodified; they are the cast's own errors.
package layerconf
