// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                             – dotenv values,
//   • `conf/global.yaml`                          – primary static file,
//   • `SINGLECAT_`-prefixed environment overrides – highest precedence.
//
// A value written as `vault:<mount>/<path>#<key>` (only the database
// password today) is resolved through internal/vault by cmd/web before
// use, so the file never needs to hold the secret itself.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing or out of range.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Durations accept Go syntax ("15s", "2m").
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

import "time"

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr      string        `koanf:"listen_addr"      validate:"required,hostname_port"`
	ForceHTTPS      bool          `koanf:"force_https"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"min=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"min=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"min=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
}

//
// Log section
//

// Log controls the zap core.  Dir is relative to Paths.Root unless
// absolute.
type Log struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `koanf:"dir"`
}

//
// Database section
//

// Database is optional.  With an empty DSN the server runs on the built-in
// demo store and static settings.
//
// The DSN template may carry one `%s` verb; Password is substituted there
// after Vault resolution so credentials stay out of flat files.
type Database struct {
	DSN            string `koanf:"dsn"`
	Password       string `koanf:"password"`
	MaxOpen        int    `koanf:"max_open"        validate:"min=0"`
	MaxIdle        int    `koanf:"max_idle"        validate:"min=0"`
	ConnectRetries int    `koanf:"connect_retries" validate:"min=0,max=20"`
}

//
// Site section
//

// Site seeds the host settings.  Rows in `site_config` override them at
// runtime when a database is configured.
type Site struct {
	Name               string        `koanf:"name"`
	PerPage            int           `koanf:"per_page"            validate:"min=0,max=100"`
	URL                string        `koanf:"url"                 validate:"required,url"`
	PermalinkStructure string        `koanf:"permalink_structure" validate:"permalink"`
	CategoryBase       string        `koanf:"category_base"`
	SettingsTTL        time.Duration `koanf:"settings_ttl"        validate:"min=0"`
}

//
// Redirect section
//

// Redirect.Status, when set, replaces the 302 used for hierarchical
// category redirects.
type Redirect struct {
	Status int `koanf:"status" validate:"omitempty,oneof=301 302 303 307 308"`
}

//
// Plugins section
//

// Plugins lists plugin names that must not be initialised.
type Plugins struct {
	Disabled []string `koanf:"disabled"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime.  The loader discovers `Root` (repo root or
// SINGLECAT_ROOT override) so later code can build absolute file paths.
type Paths struct {
	Root string
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Log      Log      `koanf:"log"`
	Database Database `koanf:"database"`
	Site     Site     `koanf:"site"`
	Redirect Redirect `koanf:"redirect"`
	Plugins  Plugins  `koanf:"plugins"`
	Paths    Paths    `koanf:"-"`
}

// applyDefaults fills zero values the YAML may leave out.
func (c *Config) applyDefaults() {
	if c.HTTP.ReadTimeout == 0 {
		c.HTTP.ReadTimeout = 10 * time.Second
	}
	if c.HTTP.WriteTimeout == 0 {
		c.HTTP.WriteTimeout = 15 * time.Second
	}
	if c.HTTP.IdleTimeout == 0 {
		c.HTTP.IdleTimeout = 60 * time.Second
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Database.MaxOpen == 0 {
		c.Database.MaxOpen = 15
	}
	if c.Database.MaxIdle == 0 {
		c.Database.MaxIdle = 5
	}
	if c.Site.Name == "" {
		c.Site.Name = "Blog"
	}
	if c.Site.PerPage == 0 {
		c.Site.PerPage = 10
	}
	if c.Site.SettingsTTL == 0 {
		c.Site.SettingsTTL = time.Minute
	}
}
