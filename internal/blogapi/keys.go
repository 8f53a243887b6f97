package blogapi

// Cache key namespaces. Listings live under "blogs:", single posts under
// "blog:". Writes pair an exact Delete of the post key with a prefix
// invalidation of the listings, so the overlapping prefixes never need to
// be disambiguated at invalidation time.
const (
	prefixBlogs = "blogs:"
	prefixBlog  = "blog:"
)

// KeyBlogs is the cache key for a post listing, "blogs:all" when no tag
// filter applies.
func KeyBlogs(tag string) string {
	if tag == "" {
		tag = "all"
	}
	return prefixBlogs + tag
}

// KeyBlog is the cache key for one post.
func KeyBlog(id string) string {
	return prefixBlog + id
}
