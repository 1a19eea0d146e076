package site

import "path"

const (
	// TemplateIndex renders the front page listing.
	TemplateIndex = "index"
	// TemplatePost renders a single article.
	TemplatePost = "post"
	// TemplateTagListing renders the per-tag archive.
	TemplateTagListing = "tag-listing"
)

// PostPath returns the URL path for a post page, with trailing slash.
func PostPath(slug string) string {
	return path.Join("/blog", slug) + "/"
}

// TagPath returns the URL path for a tag listing page, with trailing slash.
func TagPath(tag string) string {
	return path.Join("/tags", tag) + "/"
}

// PostPages returns one page descriptor per post, in date-ascending order,
// each linking to its chronological neighbors. The input slice is not
// modified.
func PostPages(posts []Post) []Page {
	ordered := append([]Post(nil), posts...)
	sortByDateAsc(ordered)

	pages := make([]Page, 0, len(ordered))
	for i, p := range ordered {
		ctx := PostContext{Post: p}
		if i > 0 {
			ctx.PrevSlug = ordered[i-1].Slug
		}
		if i < len(ordered)-1 {
			ctx.NextSlug = ordered[i+1].Slug
		}
		pages = append(pages, Page{
			Path:     PostPath(p.Slug),
			Template: TemplatePost,
			Context:  ctx,
		})
	}
	return pages
}

// Pages computes the complete page set for a build: the front page,
// one page per post, and one listing per tag. It is a pure function of
// its input; identical posts produce identical descriptors, so rebuilds
// are reproducible.
func Pages(posts []Post) []Page {
	home := append([]Post(nil), posts...)
	sortByDateDesc(home)

	pages := []Page{{
		Path:     "/",
		Template: TemplateIndex,
		Context:  IndexContext{Posts: home, Tags: CollectTags(posts)},
	}}
	pages = append(pages, PostPages(posts)...)
	for _, tp := range TagPages(posts) {
		pages = append(pages, Page{
			Path:     TagPath(tp.Tag),
			Template: TemplateTagListing,
			Context:  TagContext{Tag: tp.Tag, Posts: tp.Posts},
		})
	}
	return pages
}
