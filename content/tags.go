package content

// AllTags is the tag filter value that selects every post.
const AllTags = "all"

// TagCount is a tag and the number of posts carrying it.
type TagCount struct {
	Name  string
	Count int
}

// Tags returns the distinct tags of posts in first-appearance order.
func Tags(posts []Post) []TagCount {
	var counts []TagCount
	index := make(map[string]int)
	for _, p := range posts {
		for _, t := range p.Tags {
			if i, ok := index[t]; ok {
				counts[i].Count++
				continue
			}
			index[t] = len(counts)
			counts = append(counts, TagCount{Name: t, Count: 1})
		}
	}
	return counts
}

// FilterByTag returns the posts carrying tag. An empty tag or AllTags
// returns posts unchanged.
func FilterByTag(posts []Post, tag string) []Post {
	if tag == "" || tag == AllTags {
		return posts
	}
	var filtered []Post
	for _, p := range posts {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Related returns up to limit posts sharing at least one tag with current,
// in the order of posts. limit <= 0 means no limit.
func Related(current Post, posts []Post, limit int) []Post {
	var related []Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if current.HasTag(t) {
				related = append(related, p)
				break
			}
		}
		if limit > 0 && len(related) == limit {
			break
		}
	}
	return related
}
