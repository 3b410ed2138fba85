package blogapi

import (
	"time"

	"portfolio-api/internal/domain/blog"
	"portfolio-api/internal/domain/slug"
)

type PostRequest struct {
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

func (r PostRequest) toModel() blog.Post {
	return blog.Post{
		Slug:       slug.Resolve(r.Slug, r.Title),
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CoverImage: r.CoverImage,
		Published:  r.Published,
	}
}

func (r PostRequest) columns(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"title":       r.Title,
		"excerpt":     r.Excerpt,
		"content":     r.Content,
		"cover_image": r.CoverImage,
		"published":   r.Published,
		"updated_at":  now,
	}
}
