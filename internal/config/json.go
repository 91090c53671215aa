package config

import (
	"encoding/json"
	"os"
	"time"

	"svcadmin/internal/flagx"
)

// jsonConfig is a DTO used only for JSON unmarshalling. Durations are given
// in whole seconds or minutes so the file stays readable.
type jsonConfig struct {
	ServerAddr            string `json:"server_addr"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	AdminEmail            string `json:"admin_email"`
	AdminPasswordHash     string `json:"admin_password_hash"`
	JWTSecret             string `json:"jwt_secret"`
	JWTIssuer             string `json:"jwt_issuer"`
	JWTTTLMinutes         int    `json:"jwt_ttl_minutes"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag means no JSON layer. Read or unmarshal errors panic; by the time
// the user points at a config file, a broken one is a startup failure.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerAddr != "" {
		cfg.ServerAddr = jc.ServerAddr
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.AdminEmail != "" {
		cfg.AdminEmail = jc.AdminEmail
	}
	if jc.AdminPasswordHash != "" {
		cfg.AdminPasswordHash = jc.AdminPasswordHash
	}
	if jc.JWTSecret != "" {
		cfg.JWTSecret = jc.JWTSecret
	}
	if jc.JWTIssuer != "" {
		cfg.JWTIssuer = jc.JWTIssuer
	}
	if jc.JWTTTLMinutes > 0 {
		cfg.JWTTTL = time.Duration(jc.JWTTTLMinutes) * time.Minute
	}
}
