package galleriesapi

import (
	"encoding/json"
	"time"

	"portfolio-api/internal/domain/galleries"
	"portfolio-api/internal/domain/jsoncol"
	"portfolio-api/internal/domain/slug"
)

type GalleryRequest struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Year        string          `json:"year"`
	Location    string          `json:"location"`
	Tagline     string          `json:"tagline"`
	Description string          `json:"description"`
	CoverImage  string          `json:"cover_image"`
	Images      json.RawMessage `json:"images"` // [url | {url,exif}]
}

func (r GalleryRequest) toModel() galleries.Gallery {
	return galleries.Gallery{
		Slug:        slug.Resolve(r.Slug, r.Title),
		Title:       r.Title,
		Year:        r.Year,
		Location:    r.Location,
		Tagline:     r.Tagline,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		Images:      jsoncol.Stringify(r.Images, jsoncol.EmptyList),
	}
}

func (r GalleryRequest) columns(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"title":       r.Title,
		"year":        r.Year,
		"location":    r.Location,
		"tagline":     r.Tagline,
		"description": r.Description,
		"cover_image": r.CoverImage,
		"images":      jsoncol.Stringify(r.Images, jsoncol.EmptyList),
		"updated_at":  now,
	}
}
