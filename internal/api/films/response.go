package filmsapi

import (
	"time"

	"portfolio-api/internal/domain/credits"
	"portfolio-api/internal/domain/films"
	"portfolio-api/internal/domain/jsoncol"
	"portfolio-api/internal/domain/media"
)

// FilmDTO is a hydrated film: JSON columns decoded, gallery normalized.
type FilmDTO struct {
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

	Credits []credits.Credit `json:"credits"`
	Gallery []media.ImageRef `json:"gallery"`
	Tech    map[string]any   `json:"tech"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toFilmDTO(f films.Film) FilmDTO {
	return FilmDTO{
		Slug:          f.Slug,
		Title:         f.Title,
		Year:          f.Year,
		Duration:      f.Duration,
		Type:          f.Type,
		Genres:        f.Genres,
		Tagline:       f.Tagline,
		Description:   f.Description,
		Poster:        f.Poster,
		OriginalTitle: f.OriginalTitle,
		Language:      f.Language,
		Runtime:       f.Runtime,
		ReleaseYear:   f.ReleaseYear,
		GenreFull:     f.GenreFull,
		Format:        f.Format,
		PlotSummary:   f.PlotSummary,
		AboutProject:  f.AboutProject,
		WatchURL:      f.WatchURL,
		Credits:       credits.Parse(f.Credits),
		Gallery:       media.ParseImages(f.Gallery),
		Tech:          jsoncol.Map(f.Tech),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
