package blogapi

import (
	"encoding/json"
	"strings"
	"time"
)

// Post is the blog post DTO as the remote API serves it. The renderer and
// cache treat it as opaque data.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      TagList   `json:"tags"`
	BlogImage string    `json:"blogImage,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Likes     int       `json:"likes"`
	Views     int       `json:"views"`
	Comments  []Comment `json:"comments,omitempty"`
}

type Comment struct {
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagList normalizes the two shapes the API is known to emit for tags: a
// JSON array of strings or a single comma-separated string. Either way the
// result is trimmed, non-empty tags in their original order.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = normalizeTags(list)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}

	*t = normalizeTags(strings.Split(joined, ","))
	return nil
}

func normalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type CreatePostRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Tags      TagList `json:"tags"`
	BlogImage string  `json:"blogImage,omitempty"`
}

type UpdatePostRequest struct {
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Tags      TagList `json:"tags"`
	BlogImage string  `json:"blogImage,omitempty"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TagCount is one entry of the popular-tags listing.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
