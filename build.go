package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// Build loads all posts from the content source, derives the full page
// set, renders every page through the user's views, and writes the
// static site under Config.OutputDir. It also emits feed.xml,
// sitemap.xml, a 404 page, and the static assets. A content load
// failure aborts the whole build.
func (a *App) Build() error {
	start := time.Now()

	posts, err := a.source.Posts()
	if err != nil {
		return fmt.Errorf("site: load content: %w", err)
	}

	pages := Pages(posts)
	for _, page := range pages {
		cmp, err := a.componentFor(page)
		if err != nil {
			return err
		}
		if err := a.writePage(page.Path, cmp); err != nil {
			return err
		}
	}

	if err := a.writeNotFound(); err != nil {
		return err
	}
	if err := a.writeFeeds(posts); err != nil {
		return err
	}
	if err := copyStatic(a.Config.StaticDir, a.Config.OutputDir, a.Config.MaxImageWidth); err != nil {
		return fmt.Errorf("site: copy static assets: %w", err)
	}
	if err := a.writeDefaultAssets(); err != nil {
		return err
	}

	slog.Info("site built",
		"posts", len(posts),
		"tags", len(CollectTags(posts)),
		"pages", len(pages),
		"output", a.Config.OutputDir,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// componentFor maps a page descriptor to the user-provided view for its
// template identifier.
func (a *App) componentFor(page Page) (templ.Component, error) {
	switch page.Template {
	case TemplateIndex:
		if a.Views.Index != nil {
			return a.Views.Index(page.Context.(IndexContext), a.Config), nil
		}
	case TemplatePost:
		if a.Views.Post != nil {
			return a.Views.Post(page.Context.(PostContext), a.Config), nil
		}
	case TemplateTagListing:
		if a.Views.TagListing != nil {
			return a.Views.TagListing(page.Context.(TagContext), a.Config), nil
		}
	default:
		return nil, fmt.Errorf("site: unknown template %q for %s", page.Template, page.Path)
	}
	return nil, fmt.Errorf("site: no view registered for template %q", page.Template)
}

// writePage renders cmp into <output>/<path>/index.html.
func (a *App) writePage(urlPath string, cmp templ.Component) error {
	rel := strings.TrimPrefix(urlPath, "/")
	dir := filepath.Join(a.Config.OutputDir, filepath.FromSlash(rel))
	return writeComponent(filepath.Join(dir, "index.html"), cmp)
}

func (a *App) writeNotFound() error {
	if a.Views.NotFound == nil {
		return nil
	}
	return writeComponent(filepath.Join(a.Config.OutputDir, "404.html"), a.Views.NotFound(a.Config))
}

func (a *App) writeFeeds(posts []Post) error {
	feed, err := RenderRSS(a.Config, posts)
	if err != nil {
		return fmt.Errorf("site: render rss: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.Config.OutputDir, "feed.xml"), feed, 0o644); err != nil {
		return err
	}
	sm, err := RenderSitemap(a.Config, posts)
	if err != nil {
		return fmt.Errorf("site: render sitemap: %w", err)
	}
	return os.WriteFile(filepath.Join(a.Config.OutputDir, "sitemap.xml"), sm, 0o644)
}

// writeDefaultAssets installs the embedded stylesheet when the user's
// static dir did not provide one.
func (a *App) writeDefaultAssets() error {
	dst := filepath.Join(a.Config.OutputDir, "public", "style.css")
	if _, err := os.Stat(dst); err == nil {
		return nil
	}
	css, err := EmbeddedAssets.ReadFile("embedded/style.css")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, css, 0o644)
}

func writeComponent(path string, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(context.Background(), &buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
