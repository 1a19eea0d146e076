package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePostFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestDirSourcePosts(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "first-post.md", `---
title: First Post
date: "2024-01-01"
tags: [go, testing]
summary: The first one.
---

# Hello

Body text.
`)
	writePostFile(t, dir, "second-post.md", `---
title: Second Post
date: "2024-02-01"
---

More text.
`)

	posts, err := NewDirSource(dir).Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("post count = %d, want 2", len(posts))
	}

	// Newest first.
	if posts[0].Slug != "second-post" || posts[1].Slug != "first-post" {
		t.Errorf("order = %v, want [second-post first-post]", slugsOf(posts))
	}

	first := posts[1]
	if first.Title != "First Post" {
		t.Errorf("Title = %q, want %q", first.Title, "First Post")
	}
	if first.Date != "2024-01-01" {
		t.Errorf("Date = %q, want 2024-01-01", first.Date)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "go" || first.Tags[1] != "testing" {
		t.Errorf("Tags = %v, want [go testing]", first.Tags)
	}
	if first.Summary != "The first one." {
		t.Errorf("Summary = %q", first.Summary)
	}
	if !strings.Contains(first.Content, "# Hello") {
		t.Errorf("Content missing body: %q", first.Content)
	}
	if !first.Published {
		t.Error("non-draft post should be published")
	}

	// A post without tags loads with none.
	if len(posts[0].Tags) != 0 {
		t.Errorf("second-post tags = %v, want none", posts[0].Tags)
	}
}

func TestDirSourceSkipsDrafts(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "draft.md", `---
title: Draft
date: "2024-01-01"
draft: true
---

wip
`)
	posts, err := NewDirSource(dir).Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("drafts must not be loaded, got %v", slugsOf(posts))
	}
}

func TestDirSourceIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "notes.txt", "not a post")
	posts, err := NewDirSource(dir).Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("non-markdown files must be ignored, got %v", slugsOf(posts))
	}
}

func TestDirSourceRejectsMissingTitle(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "untitled.md", `---
date: "2024-01-01"
---

body
`)
	if _, err := NewDirSource(dir).Posts(); err == nil {
		t.Error("expected error for post without title")
	}
}

func TestDirSourceRejectsBadDate(t *testing.T) {
	dir := t.TempDir()
	writePostFile(t, dir, "bad-date.md", `---
title: Bad Date
date: "January 1st"
---

body
`)
	if _, err := NewDirSource(dir).Posts(); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestDirSourceRejectsDuplicateSlugs(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatal(err)
	}
	doc := `---
title: Dup
date: "2024-01-01"
---

body
`
	writePostFile(t, dir, "dup.md", doc)
	writePostFile(t, filepath.Join(dir, "archive"), "dup.md", doc)

	if _, err := NewDirSource(dir).Posts(); err == nil {
		t.Error("expected error for duplicate slugs")
	}
}

func TestDirSourceMissingDir(t *testing.T) {
	if _, err := NewDirSource(filepath.Join(t.TempDir(), "nope")).Posts(); err == nil {
		t.Error("expected error for missing content dir")
	}
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{
		{Slug: "old", Date: "2023-01-01", Published: true},
		{Slug: "new", Date: "2024-01-01", Published: true},
	}
	posts, err := src.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if posts[0].Slug != "new" {
		t.Errorf("StaticSource must sort newest first, got %v", slugsOf(posts))
	}
	// The source slice itself stays untouched.
	if src[0].Slug != "old" {
		t.Error("StaticSource.Posts must not reorder the receiver")
	}
}

func TestStaticSourceSkipsDrafts(t *testing.T) {
	src := StaticSource{
		{Slug: "wip", Date: "2024-02-01", Published: false},
		{Slug: "live", Date: "2024-01-01", Published: true},
	}
	posts, err := src.Posts()
	if err != nil {
		t.Fatalf("Posts failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "live" {
		t.Errorf("drafts must not be returned, got %v", slugsOf(posts))
	}
}
