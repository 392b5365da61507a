package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_ADDR", "")
	t.Setenv("CATALOG_REFRESH", "")
	t.Setenv("SHARE_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q", env.AppAddr)
	}
	if env.CatalogRefresh != time.Minute {
		t.Fatalf("CatalogRefresh = %s", env.CatalogRefresh)
	}
	if env.ShareSecret != "" {
		t.Fatalf("production must not invent a share secret")
	}
	if len(env.CORSAllowedOrigins) != 4 {
		t.Fatalf("default origins = %v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("CATALOG_REFRESH", "90")
	t.Setenv("BROWSE_SEAT_RATE", "1200")
	t.Setenv("SHARE_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://quotes.example.com, ,https://admin.example.com")

	env := LoadEnv()
	if env.AppAddr != ":9090" || env.CatalogRefresh != 90*time.Second || env.BrowseSeatRate != 1200 {
		t.Fatalf("overrides not applied: %+v", env)
	}
	if env.ShareTTL != 2*time.Hour {
		t.Fatalf("ShareTTL = %s", env.ShareTTL)
	}
	if len(env.CORSAllowedOrigins) != 2 {
		t.Fatalf("origins = %v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvBadNumbersFallBack(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BROWSE_SEAT_RATE", "lots")
	t.Setenv("CATALOG_REFRESH", "soon")
	env := LoadEnv()
	if env.BrowseSeatRate != 0 || env.CatalogRefresh != time.Minute {
		t.Fatalf("bad values should fall back: %+v", env)
	}
}
