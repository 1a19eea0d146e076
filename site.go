// Package site is a static blog generator: it loads posts from a content
// source, derives tag listings and chronological navigation, and renders
// the whole site to a directory of plain HTML files.
//
// Users provide their own templ components via the ViewFuncs struct,
// and site handles content loading, page derivation, and output writing.
package site

import (
	"os"

	"github.com/a-h/templ"
)

// ViewFuncs holds user-provided templ components that the generator calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Index      func(ctx IndexContext, cfg SiteConfig) templ.Component
	Post       func(ctx PostContext, cfg SiteConfig) templ.Component
	TagListing func(ctx TagContext, cfg SiteConfig) templ.Component
	NotFound   func(cfg SiteConfig) templ.Component
}

// App is the central application. It wires together the content source,
// page derivation, and user-provided templates.
type App struct {
	Config SiteConfig
	Views  ViewFuncs

	source Source
}

// New creates an App with the given configuration and view functions.
// Unless WithSource overrides it, posts are loaded from the markdown
// files under Config.ContentDir.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Views:  views,
	}
	a.source = NewDirSource(cfg.ContentDir)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
