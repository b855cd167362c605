package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "college_portal" {
		t.Errorf("Database.DBName = %q", cfg.Database.DBName)
	}
	if cfg.JWT.Issuer != "alqalam.edu.ye" {
		t.Errorf("JWT.Issuer = %q", cfg.JWT.Issuer)
	}
	if !cfg.Seed.Enabled {
		t.Error("Seed.Enabled = false, want true by default")
	}
}

func TestLoadConfigMissingSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: "9090"
database:
  dbname: custom_db
seed:
  enabled: false
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.DBName != "custom_db" {
		t.Errorf("Database.DBName = %q", cfg.Database.DBName)
	}
	if cfg.Seed.Enabled {
		t.Error("Seed.Enabled = true, want false from file")
	}
	// Untouched values keep their defaults
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q", cfg.Database.Host)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("SEED_ENABLED", "false")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, env should win over file", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 50 {
		t.Errorf("Database.MaxOpenConns = %d, want 50", cfg.Database.MaxOpenConns)
	}
	if cfg.Seed.Enabled {
		t.Error("Seed.Enabled = true, env should win")
	}
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "not-a-duration")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.DBName = "college"

	want := "postgres://app:pw@db.internal:5432/college?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Fatalf("connection string = %q, want %q", got, want)
	}
}
