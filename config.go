package site

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a site build.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	ContentDir string `yaml:"content_dir"` // Markdown post directory (default "content")
	StaticDir  string `yaml:"static_dir"`  // User static assets (default "public")
	OutputDir  string `yaml:"output_dir"`  // Generated site root (default "dist")

	Addr string `yaml:"addr"` // Preview server listen address (default ":3000")

	MaxImageWidth int `yaml:"max_image_width"` // Images wider than this are scaled down (default 800)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.MaxImageWidth == 0 {
		c.MaxImageWidth = 800
	}
}

// LoadConfig reads SiteConfig from a YAML file, then applies environment
// overrides and defaults. A missing file is not an error: the site can be
// configured entirely from the environment.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// fall through to env + defaults
	case err != nil:
		return SiteConfig{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Name = EnvOr("SITE_NAME", cfg.Name)
	cfg.URL = EnvOr("SITE_URL", cfg.URL)
	cfg.Description = EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.Author = EnvOr("SITE_AUTHOR", cfg.Author)
	cfg.Addr = EnvOr("SITE_ADDR", cfg.Addr)

	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithSource replaces the default markdown-directory content source.
func WithSource(src Source) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithStaticDir sets the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}
