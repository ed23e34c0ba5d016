package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Lang != "ja" {
		t.Errorf("Lang = %q, want %q", cfg.Lang, "ja")
	}
	if cfg.Encoding != "sjis" {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, "sjis")
	}
	if cfg.HolidayFile != "" {
		t.Errorf("HolidayFile = %q, want empty", cfg.HolidayFile)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "lang: en\nencoding: utf8\nholiday_file: /tmp/shuku.csv\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Lang != "en" {
		t.Errorf("Lang = %q, want %q", cfg.Lang, "en")
	}
	if cfg.Encoding != "utf8" {
		t.Errorf("Encoding = %q, want %q", cfg.Encoding, "utf8")
	}
	if cfg.HolidayFile != "/tmp/shuku.csv" {
		t.Errorf("HolidayFile = %q, want %q", cfg.HolidayFile, "/tmp/shuku.csv")
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load with an explicit missing config file must fail")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad lang", "lang: fr\n"},
		{"bad encoding", "encoding: latin1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load must reject invalid values")
			}
		})
	}
}
