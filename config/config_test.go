package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvPublicURL, "")

	c := Load(filepath.Join(t.TempDir(), "missing.env"))
	if c.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", c.Addr)
	}
	if c.LogLevel != "info" {
		t.Fatalf("expected info, got %s", c.LogLevel)
	}
	if c.SeedBytes() != nil {
		t.Fatal("empty seed should mean a random game")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvSeed, "abc")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvPublicURL, "http://table.local")

	c := Load(filepath.Join(t.TempDir(), "missing.env"))
	if c.Addr != "127.0.0.1:9000" || c.PublicURL != "http://table.local" {
		t.Fatalf("unexpected config %+v", c)
	}
	if string(c.SeedBytes()) != "abc" {
		t.Fatalf("unexpected seed %q", c.SeedBytes())
	}
	level, err := c.PtermLevel()
	if err != nil {
		t.Fatal(err)
	}
	if level != pterm.LogLevelDebug {
		t.Fatalf("expected debug level, got %v", level)
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte(EnvSeed+"=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c := Load(path)
	if c.Seed != "from-file" {
		t.Fatalf("expected seed from file, got %q", c.Seed)
	}
}

func TestUnknownLogLevel(t *testing.T) {
	c := Config{LogLevel: "loud"}
	if _, err := c.PtermLevel(); err == nil {
		t.Fatal("expected error for unknown level")
	}
	if _, err := c.Logger(); err == nil {
		t.Fatal("expected error building a logger with an unknown level")
	}
	c.LogLevel = "warn"
	logger, err := c.Logger()
	if err != nil || logger == nil {
		t.Fatalf("expected a logger, got %v", err)
	}
}
