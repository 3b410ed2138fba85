package musicvideosapi

import (
	"encoding/json"
	"time"

	"portfolio-api/internal/domain/jsoncol"
	"portfolio-api/internal/domain/musicvideos"
	"portfolio-api/internal/domain/slug"
)

type MusicVideoRequest struct {
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Artist      string          `json:"artist"`
	Year        string          `json:"year"`
	VideoURL    string          `json:"video_url"`
	Thumbnail   string          `json:"thumbnail"`
	Description string          `json:"description"`
	Credits     json.RawMessage `json:"credits"`
	Gallery     json.RawMessage `json:"gallery"`
}

func (r MusicVideoRequest) toModel() musicvideos.MusicVideo {
	return musicvideos.MusicVideo{
		Slug:        slug.Resolve(r.Slug, r.Title),
		Title:       r.Title,
		Artist:      r.Artist,
		Year:        r.Year,
		VideoURL:    r.VideoURL,
		Thumbnail:   r.Thumbnail,
		Description: r.Description,
		Credits:     jsoncol.Stringify(r.Credits, jsoncol.EmptyList),
		Gallery:     jsoncol.Stringify(r.Gallery, jsoncol.EmptyList),
	}
}

func (r MusicVideoRequest) columns(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"title":       r.Title,
		"artist":      r.Artist,
		"year":        r.Year,
		"video_url":   r.VideoURL,
		"thumbnail":   r.Thumbnail,
		"description": r.Description,
		"credits":     jsoncol.Stringify(r.Credits, jsoncol.EmptyList),
		"gallery":     jsoncol.Stringify(r.Gallery, jsoncol.EmptyList),
		"updated_at":  now,
	}
}
