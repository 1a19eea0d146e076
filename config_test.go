package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "Blog" {
		t.Errorf("Name = %q, want Blog", cfg.Name)
	}
	if cfg.ContentDir != "content" || cfg.StaticDir != "public" || cfg.OutputDir != "dist" {
		t.Errorf("dir defaults = %q %q %q", cfg.ContentDir, cfg.StaticDir, cfg.OutputDir)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want :3000", cfg.Addr)
	}
	if cfg.MaxImageWidth != 800 {
		t.Errorf("MaxImageWidth = %d, want 800", cfg.MaxImageWidth)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	if err := os.WriteFile(path, []byte(`
name: My Site
url: https://example.com
content_dir: posts
max_image_width: 1200
`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "My Site" {
		t.Errorf("Name = %q, want My Site", cfg.Name)
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.ContentDir != "posts" {
		t.Errorf("ContentDir = %q, want posts", cfg.ContentDir)
	}
	if cfg.MaxImageWidth != 1200 {
		t.Errorf("MaxImageWidth = %d, want 1200", cfg.MaxImageWidth)
	}
	// Unset fields still get defaults.
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q, want dist", cfg.OutputDir)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	if err := os.WriteFile(path, []byte("name: From File\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SITE_NAME", "From Env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Name != "From Env" {
		t.Errorf("Name = %q, env must win over file", cfg.Name)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	if err := os.WriteFile(path, []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SITE_TEST_KEY", "set")
	if got := EnvOr("SITE_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("EnvOr = %q, want set", got)
	}
	if got := EnvOr("SITE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("EnvOr = %q, want fallback", got)
	}
}
