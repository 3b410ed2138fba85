package galleriesapi

import (
	"time"

	"portfolio-api/internal/domain/galleries"
	"portfolio-api/internal/domain/media"
)

type GalleryDTO struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Year        string           `json:"year"`
	Location    string           `json:"location"`
	Tagline     string           `json:"tagline"`
	Description string           `json:"description"`
	CoverImage  string           `json:"cover_image"`
	Images      []media.ImageRef `json:"images"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toGalleryDTO(g galleries.Gallery) GalleryDTO {
	return GalleryDTO{
		Slug:        g.Slug,
		Title:       g.Title,
		Year:        g.Year,
		Location:    g.Location,
		Tagline:     g.Tagline,
		Description: g.Description,
		CoverImage:  g.CoverImage,
		Images:      media.ParseImages(g.Images),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
