package client

import (
	blogapi "portfolio-api/internal/api/blog"
	filmsapi "portfolio-api/internal/api/films"
	galleriesapi "portfolio-api/internal/api/galleries"
	mediaapi "portfolio-api/internal/api/media"
	musicvideosapi "portfolio-api/internal/api/musicvideos"
	"portfolio-api/internal/domain/credits"
	"portfolio-api/internal/domain/media"
	"portfolio-api/internal/domain/slug"
)

// Wire types, shared with the server so both sides agree on field names.
type (
	Film            = filmsapi.FilmDTO
	FilmInput       = filmsapi.FilmRequest
	Gallery         = galleriesapi.GalleryDTO
	GalleryInput    = galleriesapi.GalleryRequest
	MusicVideo      = musicvideosapi.MusicVideoDTO
	MusicVideoInput = musicvideosapi.MusicVideoRequest
	PostSummary     = blogapi.PostSummaryDTO
	Post            = blogapi.PostDTO
	PostInput       = blogapi.PostRequest

	Credit   = credits.Credit
	ImageRef = media.ImageRef

	UploadResult = mediaapi.UploadResponse
)

// Slugify applies the same rules the server uses to derive slugs from titles.
func Slugify(input string) string {
	return slug.Make(input)
}
