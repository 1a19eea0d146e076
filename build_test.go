package site_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	site "github.com/grahamsutton/grahamsutton.dev"
	"github.com/grahamsutton/grahamsutton.dev/views"
)

func buildTestSite(t *testing.T, posts []site.Post) string {
	t.Helper()
	out := t.TempDir()
	cfg := site.SiteConfig{
		Name:      "Test Blog",
		URL:       "https://example.com",
		OutputDir: out,
		StaticDir: filepath.Join(t.TempDir(), "none"),
	}
	app := site.New(cfg, views.Default(), site.WithSource(site.StaticSource(posts)))
	if err := app.Build(); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return out
}

func readOutput(t *testing.T, out string, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(out, filepath.Join(parts...)))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestBuildWritesFullSite(t *testing.T) {
	posts := []site.Post{
		{Slug: "a", Title: "Post A", Date: "2023-01-01", Tags: []string{"go"}, Summary: "first", Content: "# A", Published: true},
		{Slug: "b", Title: "Post B", Date: "2023-02-01", Tags: []string{"go", "rust"}, Summary: "second", Content: "# B", Published: true},
	}
	out := buildTestSite(t, posts)

	for _, path := range []string{
		"index.html",
		"404.html",
		"feed.xml",
		"sitemap.xml",
		filepath.Join("blog", "a", "index.html"),
		filepath.Join("blog", "b", "index.html"),
		filepath.Join("tags", "go", "index.html"),
		filepath.Join("tags", "rust", "index.html"),
		filepath.Join("public", "style.css"),
	} {
		if _, err := os.Stat(filepath.Join(out, path)); err != nil {
			t.Errorf("missing output file %s: %v", path, err)
		}
	}
}

func TestBuildTagListingContents(t *testing.T) {
	posts := []site.Post{
		{Slug: "a", Title: "Post A", Date: "2023-01-01", Tags: []string{"go"}, Published: true},
		{Slug: "b", Title: "Post B", Date: "2023-02-01", Tags: []string{"go", "rust"}, Published: true},
	}
	out := buildTestSite(t, posts)

	goPage := readOutput(t, out, "tags", "go", "index.html")
	// Newest first: B before A.
	bIdx := strings.Index(goPage, "Post B")
	aIdx := strings.Index(goPage, "Post A")
	if bIdx < 0 || aIdx < 0 || bIdx > aIdx {
		t.Errorf("go listing should show Post B before Post A")
	}

	rustPage := readOutput(t, out, "tags", "rust", "index.html")
	if !strings.Contains(rustPage, "Post B") || strings.Contains(rustPage, "Post A") {
		t.Errorf("rust listing should contain only Post B")
	}
}

func TestBuildPostNavigation(t *testing.T) {
	posts := []site.Post{
		{Slug: "a", Title: "Post A", Date: "2023-01-01", Published: true},
		{Slug: "b", Title: "Post B", Date: "2023-02-01", Published: true},
	}
	out := buildTestSite(t, posts)

	oldest := readOutput(t, out, "blog", "a", "index.html")
	if !strings.Contains(oldest, `href="/blog/b/"`) {
		t.Error("oldest post should link forward to /blog/b/")
	}
	if strings.Contains(oldest, `rel="prev"`) {
		t.Error("oldest post should have no previous link")
	}

	newest := readOutput(t, out, "blog", "b", "index.html")
	if !strings.Contains(newest, `href="/blog/a/"`) {
		t.Error("newest post should link back to /blog/a/")
	}
	if strings.Contains(newest, `rel="next"`) {
		t.Error("newest post should have no next link")
	}
}

func TestBuildReproducible(t *testing.T) {
	posts := []site.Post{
		{Slug: "a", Title: "Post A", Date: "2023-01-01", Tags: []string{"go"}, Content: "body", Published: true},
	}
	first := buildTestSite(t, posts)
	second := buildTestSite(t, posts)

	for _, path := range []string{"index.html", filepath.Join("tags", "go", "index.html"), "feed.xml", "sitemap.xml"} {
		a := readOutput(t, first, path)
		b := readOutput(t, second, path)
		if a != b {
			t.Errorf("output %s differs between identical builds", path)
		}
	}
}

func TestBuildFailsOnLoadError(t *testing.T) {
	cfg := site.SiteConfig{
		Name:       "Test Blog",
		URL:        "https://example.com",
		OutputDir:  t.TempDir(),
		ContentDir: filepath.Join(t.TempDir(), "missing"),
	}
	app := site.New(cfg, views.Default())
	if err := app.Build(); err == nil {
		t.Error("Build must fail when the content source fails")
	}
}

func TestBuildUntaggedPostsAppearNowhere(t *testing.T) {
	posts := []site.Post{
		{Slug: "tagged", Title: "Tagged", Date: "2023-01-01", Tags: []string{"go"}, Published: true},
		{Slug: "untagged", Title: "Untagged", Date: "2023-02-01", Published: true},
	}
	out := buildTestSite(t, posts)

	if _, err := os.Stat(filepath.Join(out, "tags")); err != nil {
		t.Fatalf("tags dir missing: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(out, "tags"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "go" {
		t.Errorf("expected only a go tag dir, got %v", entries)
	}
	goPage := readOutput(t, out, "tags", "go", "index.html")
	if strings.Contains(goPage, "Untagged") {
		t.Error("untagged post must not appear in any tag listing")
	}
}
