package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppEnv             string
	AppAddr            string
	GinMode            string
	DBDSN              string
	CatalogFile        string
	CatalogRefresh     time.Duration
	BrowseSeatRate     int64
	ShareSecret        string
	ShareTTL           time.Duration
	CORSAllowedOrigins []string
}

// LoadEnv reads configuration from the environment. Outside production a local .env
// file is loaded first; real environment variables win over it.
func LoadEnv() Env {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv != "production" {
		_ = godotenv.Load()
	}

	env := Env{
		AppEnv:         appEnv,
		AppAddr:        getString("APP_ADDR", ":8080"),
		GinMode:        getString("GIN_MODE", ""),
		DBDSN:          getString("DB_DSN", ""),
		CatalogFile:    getString("CATALOG_FILE", "catalog.json"),
		CatalogRefresh: getDuration("CATALOG_REFRESH", time.Minute),
		BrowseSeatRate: getInt64("BROWSE_SEAT_RATE", 0),
		ShareSecret:    getString("SHARE_SECRET", ""),
		ShareTTL:       getDuration("SHARE_TTL", 7*24*time.Hour),
		CORSAllowedOrigins: splitOrigins(getString("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")),
	}

	if env.ShareSecret == "" {
		if appEnv == "production" {
			log.Println("[CONFIG] SHARE_SECRET is empty, share links are disabled")
		} else {
			env.ShareSecret = "dev-share-secret-change-me"
		}
	}
	return env
}

func getString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("[CONFIG] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

// getDuration accepts Go durations ("90s") or plain seconds ("90").
func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	log.Printf("[CONFIG] invalid %s=%q, using %s", key, v, def)
	return def
}

func splitOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
