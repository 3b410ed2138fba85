package filmsapi

import (
	"encoding/json"
	"time"

	"portfolio-api/internal/domain/films"
	"portfolio-api/internal/domain/jsoncol"
	"portfolio-api/internal/domain/slug"
)

// ---------- requests

// FilmRequest is the body of POST /films and PUT /films/:slug. Absent fields
// are stored as their empty value.
type FilmRequest struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Year        string `json:"year"`
	Duration    string `json:"duration"`
	Type        string `json:"type"`
	Genres      string `json:"genres"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Poster      string `json:"poster"`

	OriginalTitle string `json:"original_title"`
	Language      string `json:"language"`
	Runtime       string `json:"runtime"`
	ReleaseYear   string `json:"release_year"`
	GenreFull     string `json:"genre_full"`
	Format        string `json:"format"`
	PlotSummary   string `json:"plot_summary"`
	AboutProject  string `json:"about_project"`
	WatchURL      string `json:"watch_url"`

	Credits json.RawMessage `json:"credits"` // [{role,name}]
	Gallery json.RawMessage `json:"gallery"` // [url | {url,exif}]
	Tech    json.RawMessage `json:"tech"`    // free-form object
}

func (r FilmRequest) toModel() films.Film {
	return films.Film{
		Slug:          slug.Resolve(r.Slug, r.Title),
		Title:         r.Title,
		Year:          r.Year,
		Duration:      r.Duration,
		Type:          r.Type,
		Genres:        r.Genres,
		Tagline:       r.Tagline,
		Description:   r.Description,
		Poster:        r.Poster,
		OriginalTitle: r.OriginalTitle,
		Language:      r.Language,
		Runtime:       r.Runtime,
		ReleaseYear:   r.ReleaseYear,
		GenreFull:     r.GenreFull,
		Format:        r.Format,
		PlotSummary:   r.PlotSummary,
		AboutProject:  r.AboutProject,
		WatchURL:      r.WatchURL,
		Credits:       jsoncol.Stringify(r.Credits, jsoncol.EmptyList),
		Gallery:       jsoncol.Stringify(r.Gallery, jsoncol.EmptyList),
		Tech:          jsoncol.Stringify(r.Tech, jsoncol.EmptyMap),
	}
}

// columns is the full-replace column set for PUT. The slug is the key and is
// never rewritten.
func (r FilmRequest) columns(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"title":          r.Title,
		"year":           r.Year,
		"duration":       r.Duration,
		"type":           r.Type,
		"genres":         r.Genres,
		"tagline":        r.Tagline,
		"description":    r.Description,
		"poster":         r.Poster,
		"original_title": r.OriginalTitle,
		"language":       r.Language,
		"runtime":        r.Runtime,
		"release_year":   r.ReleaseYear,
		"genre_full":     r.GenreFull,
		"format":         r.Format,
		"plot_summary":   r.PlotSummary,
		"about_project":  r.AboutProject,
		"watch_url":      r.WatchURL,
		"credits":        jsoncol.Stringify(r.Credits, jsoncol.EmptyList),
		"gallery":        jsoncol.Stringify(r.Gallery, jsoncol.EmptyList),
		"tech":           jsoncol.Stringify(r.Tech, jsoncol.EmptyMap),
		"updated_at":     now,
	}
}
