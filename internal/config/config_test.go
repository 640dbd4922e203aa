// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// These tests redirect the config directory, so they do not run in parallel.

func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(func() {
		SetConfigDirOverride("")
		SetConfigFilePathOverride("")
	})
	return dir
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	withConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg.Zone != want.Zone || cfg.Locale != want.Locale || cfg.Pattern != want.Pattern {
		t.Errorf("Load = %+v, want defaults %+v", cfg, want)
	}
	if cfg.Hour12 != nil {
		t.Errorf("Hour12 = %v, want nil", *cfg.Hour12)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := withConfigDir(t)

	body := "zone = \"Asia/Tokyo\"\nlocale = \"ja-JP\"\npattern = \"YYYY/MM/DD\"\nhour12 = false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Zone != "Asia/Tokyo" || cfg.Locale != "ja-JP" || cfg.Pattern != "YYYY/MM/DD" {
		t.Errorf("Load = %+v", cfg)
	}
	if cfg.Hour12 == nil || *cfg.Hour12 {
		t.Errorf("Hour12 = %v, want false", cfg.Hour12)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := withConfigDir(t)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("zone = \"Asia/Tokyo\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEMPORA_ZONE", "Europe/Paris")
	t.Setenv("TEMPORA_LOCALE", "fr-FR")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Zone != "Europe/Paris" {
		t.Errorf("Zone = %q, want env override Europe/Paris", cfg.Zone)
	}
	if cfg.Locale != "fr-FR" {
		t.Errorf("Locale = %q, want fr-FR", cfg.Locale)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := withConfigDir(t)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("zone = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got: %v", err)
	}
}

func TestConfigFilePathOverride(t *testing.T) {
	withConfigDir(t)

	custom := filepath.Join(t.TempDir(), "custom.toml")
	SetConfigFilePathOverride(custom)

	path, err := ConfigFilePath()
	if err != nil {
		t.Fatal(err)
	}
	if path != custom {
		t.Errorf("ConfigFilePath = %q, want %q", path, custom)
	}
}

func TestWriteDefault(t *testing.T) {
	dir := withConfigDir(t)

	path, err := WriteDefault()
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("wrote to %q, want inside %q", path, dir)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load after WriteDefault: %v", err)
	}
	if cfg.Zone != DefaultConfig().Zone {
		t.Errorf("Zone = %q, want default", cfg.Zone)
	}

	// A second write must refuse to clobber.
	if _, err := WriteDefault(); err == nil {
		t.Error("WriteDefault should refuse to overwrite an existing file")
	}
}
