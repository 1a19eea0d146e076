package site

import "sort"

// CollectTags returns every distinct tag string referenced by any post,
// in order of first occurrence. Matching is exact: tags differing only in
// case or whitespace are distinct tags. Posts without tags contribute
// nothing. First-occurrence order keeps enumeration deterministic across
// rebuilds.
func CollectTags(posts []Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// PostsWithTag returns the posts whose Tags contain tag (exact match),
// sorted by date descending. Ties keep input order.
func PostsWithTag(posts []Post, tag string) []Post {
	var matched []Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				matched = append(matched, p)
				break
			}
		}
	}
	sortByDateDesc(matched)
	return matched
}

// TagPages builds one TagPage per distinct tag, in first-occurrence order.
// Every returned page has at least one post: tags only exist because some
// post declared them.
func TagPages(posts []Post) []TagPage {
	tags := CollectTags(posts)
	pages := make([]TagPage, 0, len(tags))
	for _, tag := range tags {
		pages = append(pages, TagPage{
			Tag:   tag,
			Posts: PostsWithTag(posts, tag),
		})
	}
	return pages
}

// sortByDateDesc sorts posts newest first. The sort is stable so that
// posts sharing a date keep their input order across rebuilds.
func sortByDateDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
}

func sortByDateAsc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date < posts[j].Date
	})
}
