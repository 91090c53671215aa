package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if present; real environment variables
// win over it (godotenv does not override existing ones).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := lookup("SVCADMIN_SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := lookup("SVCADMIN_REQUEST_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := lookup("SVCADMIN_ADMIN_EMAIL"); v != "" {
		cfg.AdminEmail = v
	}
	if v := lookup("SVCADMIN_ADMIN_PASSWORD_HASH"); v != "" {
		cfg.AdminPasswordHash = v
	}
	if v := lookup("SVCADMIN_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := lookup("SVCADMIN_JWT_ISSUER"); v != "" {
		cfg.JWTIssuer = v
	}
	if v := lookup("SVCADMIN_JWT_TTL_MINUTES"); v != "" {
		if mins, err := strconv.Atoi(v); err == nil && mins > 0 {
			cfg.JWTTTL = time.Duration(mins) * time.Minute
		}
	}
}

func lookup(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
