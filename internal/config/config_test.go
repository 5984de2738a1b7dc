// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"strings"
	"testing"
)

// clearEnv blanks every variable Load reads so tests see pure defaults.
// envOrDefault treats empty the same as unset, and t.Setenv restores the
// originals when the test finishes.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("env: got %q, want %q", cfg.Env, "development")
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("addr: got %q, want %q", cfg.Addr(), "0.0.0.0:8080")
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev() with default env")
	}
	if cfg.DBName != "newsdesk" {
		t.Errorf("db name: got %q, want %q", cfg.DBName, "newsdesk")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9000")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("VALKEY_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("port: got %q, want %q", cfg.Port, "9000")
	}
	if cfg.DBHost != "db.internal" {
		t.Errorf("db host: got %q, want %q", cfg.DBHost, "db.internal")
	}
	if cfg.ValkeyPassword != "secret" {
		t.Errorf("valkey password: got %q, want %q", cfg.ValkeyPassword, "secret")
	}
}

func TestLoadProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for default password in production")
	}

	t.Setenv("POSTGRES_PASSWORD", "real-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("production must not report IsDev()")
	}
}

func TestDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTGRES_USER", "nd")
	t.Setenv("POSTGRES_PASSWORD", "pw")
	t.Setenv("POSTGRES_HOST", "pg")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_DB", "catalog")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dsn := cfg.DSN()
	want := "postgres://nd:pw@pg:5433/catalog?sslmode=disable"
	if dsn != want {
		t.Errorf("dsn: got %q, want %q", dsn, want)
	}
	if !strings.HasPrefix(dsn, "postgres://") {
		t.Errorf("dsn scheme: %q", dsn)
	}
}
