package site

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// Store is a SQLite-backed content source. It exists so a site whose
// posts live in a database (for instance one migrating off a dynamic
// blog engine) can build straight from it; new sites normally use
// DirSource instead.
type Store struct {
	db *sql.DB
}

// NewStore opens the SQLite database at path and ensures the schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL plus a busy timeout lets an import run while a build reads.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    slug TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    tags TEXT NOT NULL,
    summary TEXT NOT NULL,
    content TEXT NOT NULL,
    published INTEGER NOT NULL DEFAULT 1
);
`)
	return err
}

// Posts returns all published posts ordered by date descending, slug
// ascending. The secondary slug ordering keeps builds reproducible when
// posts share a date.
func (s *Store) Posts() ([]Post, error) {
	rows, err := s.db.Query(`SELECT slug, title, date, tags, summary, content, published FROM posts WHERE published = 1 ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

// AllPosts returns every post including drafts, ordered like Posts.
func (s *Store) AllPosts() ([]Post, error) {
	rows, err := s.db.Query(`SELECT slug, title, date, tags, summary, content, published FROM posts ORDER BY date DESC, slug ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]Post, error) {
	var posts []Post
	for rows.Next() {
		var slug, title, date, tags, summary, content string
		var published int
		if err := rows.Scan(&slug, &title, &date, &tags, &summary, &content, &published); err != nil {
			return nil, err
		}
		posts = append(posts, Post{
			Slug:      slug,
			Title:     title,
			Date:      date,
			Tags:      ParseTags(tags),
			Summary:   summary,
			Content:   content,
			Published: published == 1,
		})
	}
	return posts, rows.Err()
}

// GetPost returns a single post by slug, published or not.
func (s *Store) GetPost(slug string) (Post, error) {
	var title, date, tags, summary, content string
	var published int
	err := s.db.QueryRow(`SELECT title, date, tags, summary, content, published FROM posts WHERE slug = ?`, slug).
		Scan(&title, &date, &tags, &summary, &content, &published)
	if err != nil {
		return Post{}, err
	}
	return Post{
		Slug:      slug,
		Title:     title,
		Date:      date,
		Tags:      ParseTags(tags),
		Summary:   summary,
		Content:   content,
		Published: published == 1,
	}, nil
}

// SavePost upserts a post. Tags keep their authored case; the
// comma-delimited column cannot hold tags containing commas, so those
// are rejected, and surrounding whitespace does not survive a
// round-trip through ParseTags.
func (s *Store) SavePost(p Post) error {
	for _, t := range p.Tags {
		if strings.Contains(t, ",") {
			return fmt.Errorf("save post %s: tag %q contains a comma", p.Slug, t)
		}
	}
	tagString := ""
	if len(p.Tags) > 0 {
		tagString = "," + strings.Join(p.Tags, ",") + ","
	}
	published := 0
	if p.Published {
		published = 1
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO posts (slug, title, date, tags, summary, content, published) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Slug, p.Title, p.Date, tagString, p.Summary, p.Content, published)
	if err != nil {
		return fmt.Errorf("save post %s: %w", p.Slug, err)
	}
	return nil
}

// DeletePost removes a post by slug.
func (s *Store) DeletePost(slug string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE slug = ?`, slug)
	return err
}

// ParseTags splits a comma-delimited tag string (e.g. ",go,web,") into a slice.
func ParseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
