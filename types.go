package site

// Post is one blog article loaded from a content source. Slug doubles as
// the URL path segment and must be unique across the site.
type Post struct {
	Slug      string
	Title     string
	Date      string // YYYY-MM-DD; site ordering is lexicographic on this format
	Tags      []string
	Summary   string
	Content   string
	Published bool
}

// TagPage is the derived listing of every post carrying one tag,
// sorted by date descending. It is recomputed on each build, never stored.
type TagPage struct {
	Tag   string
	Posts []Post
}

// Page is a registration descriptor handed to the rendering boundary:
// a URL path, a template identifier, and the context the template needs.
type Page struct {
	Path     string
	Template string // "index", "post" or "tag-listing"
	Context  any
}

// PostContext is the context for a single post page. PrevSlug and NextSlug
// point at the chronologically adjacent posts; empty at either boundary.
type PostContext struct {
	Post     Post
	PrevSlug string
	NextSlug string
}

// TagContext is the context for one tag listing page.
type TagContext struct {
	Tag   string
	Posts []Post
}

// IndexContext is the context for the front page.
type IndexContext struct {
	Posts []Post
	Tags  []string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
