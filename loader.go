package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Source provides the posts a build runs from. Implementations must
// return published posts ordered by date descending; ties keep a stable
// order across calls so rebuilds are reproducible.
type Source interface {
	Posts() ([]Post, error)
}

// postMeta is the YAML frontmatter accepted at the top of each markdown file.
type postMeta struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags"`
	Summary string   `yaml:"summary"`
	Draft   bool     `yaml:"draft"`
}

// DirSource loads posts from a directory of markdown files. The slug is
// the filename without its extension, so `content/my-post.md` becomes
// `/blog/my-post/`.
type DirSource struct {
	dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Posts walks the content directory and parses every .md file. Drafts are
// excluded. The walk is lexical by filename, which keeps the order of
// posts sharing a date stable between builds.
func (s *DirSource) Posts() ([]Post, error) {
	var posts []Post
	seen := make(map[string]string)
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		post, err := loadPostFile(path)
		if err != nil {
			return err
		}
		if prev, ok := seen[post.Slug]; ok {
			return fmt.Errorf("duplicate slug %q: %s and %s", post.Slug, prev, path)
		}
		seen[post.Slug] = path
		if !post.Published {
			return nil
		}
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load posts from %s: %w", s.dir, err)
	}
	sortByDateDesc(posts)
	return posts, nil
}

func loadPostFile(path string) (Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, err
	}

	var meta postMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Post{}, fmt.Errorf("parse frontmatter in %s: %w", path, err)
	}

	if meta.Title == "" {
		return Post{}, fmt.Errorf("%s: missing title", path)
	}
	if _, err := time.Parse("2006-01-02", meta.Date); err != nil {
		return Post{}, fmt.Errorf("%s: date must be YYYY-MM-DD: %w", path, err)
	}

	slug := strings.TrimSuffix(filepath.Base(path), ".md")
	return Post{
		Slug:      slug,
		Title:     meta.Title,
		Date:      meta.Date,
		Tags:      meta.Tags,
		Summary:   meta.Summary,
		Content:   string(body),
		Published: !meta.Draft,
	}, nil
}

// StaticSource serves a fixed post slice, mainly for tests and previews.
type StaticSource []Post

// Posts returns the published posts sorted by date descending. Drafts
// are filtered out like every other source.
func (s StaticSource) Posts() ([]Post, error) {
	var posts []Post
	for _, p := range s {
		if p.Published {
			posts = append(posts, p)
		}
	}
	sortByDateDesc(posts)
	return posts, nil
}
