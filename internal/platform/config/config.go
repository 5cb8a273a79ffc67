// Package config arma la configuración desde env para que main quede liviano.
package config

import (
	"os"
	"strings"
	"time"
)

type Server struct {
	Addr string

	// DBDSN enciende Postgres; SQLitePath enciende el snapshot store.
	// Si ambos vienen vacíos, los repos viven en memoria.
	DBDSN      string
	SQLitePath string

	JWTSigningKey string
	JWTIssuer     string
	TokenTTL      time.Duration

	AppName string
}

// FromEnv lee:
// - PORT (default 8080)
// - DB_DSN, SQLITE_PATH
// - JWT_SIGNING_KEY (default de dev), JWT_TTL (Go duration, default 24h)
// - APP_NAME
func FromEnv() Server {
	addr := ":8080"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		addr = ":" + v
	}

	key := os.Getenv("JWT_SIGNING_KEY")
	if key == "" {
		// Default solo para desarrollo; en producción se sobreescribe.
		key = "dev-secret-key-change-in-production"
	}

	ttl := 24 * time.Hour
	if v := strings.TrimSpace(os.Getenv("JWT_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			ttl = parsed
		}
	}

	app := os.Getenv("APP_NAME")
	if app == "" {
		app = "animal-shelter-api"
	}

	return Server{
		Addr:          addr,
		DBDSN:         os.Getenv("DB_DSN"),
		SQLitePath:    os.Getenv("SQLITE_PATH"),
		JWTSigningKey: key,
		JWTIssuer:     app,
		TokenTTL:      ttl,
		AppName:       app,
	}
}
