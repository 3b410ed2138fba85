package musicvideosapi

import (
	"time"

	"portfolio-api/internal/domain/credits"
	"portfolio-api/internal/domain/media"
	"portfolio-api/internal/domain/musicvideos"
)

type MusicVideoDTO struct {
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Artist      string           `json:"artist"`
	Year        string           `json:"year"`
	VideoURL    string           `json:"video_url"`
	Thumbnail   string           `json:"thumbnail"`
	Description string           `json:"description"`
	Credits     []credits.Credit `json:"credits"`
	Gallery     []media.ImageRef `json:"gallery"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func toMusicVideoDTO(v musicvideos.MusicVideo) MusicVideoDTO {
	return MusicVideoDTO{
		Slug:        v.Slug,
		Title:       v.Title,
		Artist:      v.Artist,
		Year:        v.Year,
		VideoURL:    v.VideoURL,
		Thumbnail:   v.Thumbnail,
		Description: v.Description,
		Credits:     credits.Parse(v.Credits),
		Gallery:     media.ParseImages(v.Gallery),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
