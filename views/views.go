// Package views is the default theme: templ components for the index,
// post, and tag listing pages. Sites wanting a different look supply
// their own ViewFuncs instead.
package views

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	site "github.com/grahamsutton/grahamsutton.dev"
	"github.com/grahamsutton/grahamsutton.dev/markdown"
)

// Default returns the ViewFuncs for the built-in theme.
func Default() site.ViewFuncs {
	return site.ViewFuncs{
		Index:      Index,
		Post:       Post,
		TagListing: TagListing,
		NotFound:   NotFound,
	}
}

// Index renders the front page: every post newest first, plus the tag cloud.
func Index(ctx site.IndexContext, cfg site.SiteConfig) templ.Component {
	meta := site.PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         site.BuildURL(cfg.URL),
		OGType:      "website",
	}
	return layout(meta, cfg, site.WebsiteJsonLD(cfg), func(c context.Context, w io.Writer) error {
		write(w, "<h1>"+html.EscapeString(cfg.Name)+"</h1>")
		if cfg.Description != "" {
			write(w, "<p class=\"post-summary\">"+html.EscapeString(cfg.Description)+"</p>")
		}
		writeTagList(w, ctx.Tags)
		write(w, "<section class=\"post-list\">")
		for _, p := range ctx.Posts {
			writePostItem(w, p)
		}
		write(w, "</section>")
		return nil
	})
}

// Post renders a single article with chronological navigation links.
func Post(ctx site.PostContext, cfg site.SiteConfig) templ.Component {
	p := ctx.Post
	meta := site.PageMeta{
		Title:       p.Title + " | " + cfg.Name,
		Description: p.Summary,
		URL:         site.BuildURL(cfg.URL, "blog", p.Slug),
		OGType:      "article",
	}
	return layout(meta, cfg, site.BlogPostingJsonLD(p, cfg), func(c context.Context, w io.Writer) error {
		write(w, "<article>")
		write(w, "<h1>"+html.EscapeString(p.Title)+"</h1>")
		write(w, "<p class=\"post-meta\">"+html.EscapeString(p.Date)+"</p>")
		writeTagList(w, p.Tags)
		if err := markdown.Component(p.Content).Render(c, w); err != nil {
			return err
		}
		write(w, "</article>")
		write(w, "<nav class=\"post-nav\">")
		if ctx.PrevSlug != "" {
			write(w, "<a href=\""+site.PostPath(ctx.PrevSlug)+"\" rel=\"prev\">&larr; Previous</a>")
		} else {
			write(w, "<span></span>")
		}
		if ctx.NextSlug != "" {
			write(w, "<a href=\""+site.PostPath(ctx.NextSlug)+"\" rel=\"next\">Next &rarr;</a>")
		} else {
			write(w, "<span></span>")
		}
		write(w, "</nav>")
		return nil
	})
}

// TagListing renders the archive page for one tag.
func TagListing(ctx site.TagContext, cfg site.SiteConfig) templ.Component {
	meta := site.PageMeta{
		Title:       ctx.Tag + " | " + cfg.Name,
		Description: "Posts tagged " + ctx.Tag,
		URL:         site.BuildURL(cfg.URL, "tags", ctx.Tag),
		OGType:      "website",
	}
	return layout(meta, cfg, "", func(c context.Context, w io.Writer) error {
		write(w, "<h1>Posts tagged &ldquo;"+html.EscapeString(ctx.Tag)+"&rdquo;</h1>")
		write(w, "<section class=\"post-list\">")
		for _, p := range ctx.Posts {
			writePostItem(w, p)
		}
		write(w, "</section>")
		write(w, "<p><a href=\"/\">&larr; All posts</a></p>")
		return nil
	})
}

// NotFound renders the 404 page.
func NotFound(cfg site.SiteConfig) templ.Component {
	meta := site.PageMeta{
		Title:  "Not Found | " + cfg.Name,
		URL:    site.BuildURL(cfg.URL),
		OGType: "website",
	}
	return layout(meta, cfg, "", func(c context.Context, w io.Writer) error {
		write(w, "<h1>Page not found</h1>")
		write(w, "<p><a href=\"/\">Back to the front page</a></p>")
		return nil
	})
}

// layout wraps body in the shared document shell: head metadata,
// stylesheet, header, and footer.
func layout(meta site.PageMeta, cfg site.SiteConfig, jsonLD string, body func(context.Context, io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(c context.Context, w io.Writer) error {
		write(w, "<!DOCTYPE html><html lang=\"en\"><head>")
		write(w, "<meta charset=\"utf-8\"/>")
		write(w, "<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
		write(w, "<title>"+html.EscapeString(meta.Title)+"</title>")
		if meta.Description != "" {
			write(w, "<meta name=\"description\" content=\""+html.EscapeString(meta.Description)+"\"/>")
		}
		write(w, "<link rel=\"canonical\" href=\""+html.EscapeString(meta.URL)+"\"/>")
		write(w, "<meta property=\"og:title\" content=\""+html.EscapeString(meta.Title)+"\"/>")
		write(w, "<meta property=\"og:type\" content=\""+meta.OGType+"\"/>")
		write(w, "<meta property=\"og:url\" content=\""+html.EscapeString(meta.URL)+"\"/>")
		write(w, "<link rel=\"alternate\" type=\"application/rss+xml\" href=\"/feed.xml\"/>")
		write(w, "<link rel=\"stylesheet\" href=\"/public/style.css\"/>")
		if jsonLD != "" {
			write(w, "<script type=\"application/ld+json\">"+jsonLD+"</script>")
		}
		write(w, "</head><body>")
		write(w, "<header><a href=\"/\">"+html.EscapeString(cfg.Name)+"</a></header>")
		write(w, "<main>")
		if err := body(c, w); err != nil {
			return err
		}
		write(w, "</main>")
		write(w, "<footer><a href=\"/feed.xml\">RSS</a></footer>")
		write(w, "</body></html>")
		return nil
	})
}

func writePostItem(w io.Writer, p site.Post) {
	write(w, "<article class=\"post-item\">")
	write(w, "<h2><a href=\""+site.PostPath(p.Slug)+"\">"+html.EscapeString(p.Title)+"</a></h2>")
	write(w, "<p class=\"post-meta\">"+html.EscapeString(p.Date)+"</p>")
	if p.Summary != "" {
		write(w, "<p class=\"post-summary\">"+html.EscapeString(p.Summary)+"</p>")
	}
	write(w, "</article>")
}

func writeTagList(w io.Writer, tags []string) {
	if len(tags) == 0 {
		return
	}
	write(w, "<p class=\"tag-list\">")
	for _, t := range tags {
		write(w, "<a href=\"/tags/"+site.PathEscape(t)+"/\">#"+html.EscapeString(t)+"</a>")
	}
	write(w, "</p>")
}

func write(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
