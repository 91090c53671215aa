// Package config assembles the console's runtime settings from layered
// sources: built-in defaults, then environment (including a local .env
// file), then an optional JSON file, then command-line flags. Later sources
// override earlier ones.
package config

import "time"

// Config holds runtime settings for the admin console.
type Config struct {
	// ServerAddr is the base URL of the admin backend.
	ServerAddr string
	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration

	// AdminEmail and AdminPasswordHash configure the static authenticator.
	// The hash is a bcrypt digest; the plaintext is never stored.
	AdminEmail        string
	AdminPasswordHash string

	// JWT session-token settings.
	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration
}

// LoadDefaults populates c with development defaults. The password hash
// default is empty on purpose: the console refuses to start without one.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.AdminEmail = "admin@admin.com"
	c.JWTIssuer = "svcadmin"
	c.JWTTTL = time.Hour
}

// LoadConfig builds the effective configuration: defaults, then env, then
// the optional JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
