package films

import "time"

// Film is one row of the films table. Credits, Gallery and Tech hold JSON
// text; hydrate them through the api layer, never by hand.
type Film struct {
	Slug string `gorm:"type:text;primaryKey" json:"slug"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Year        string `gorm:"type:text;not null" json:"year"`
	Duration    string `gorm:"type:text;not null" json:"duration"`
	Type        string `gorm:"type:text;not null" json:"type"`
	Genres      string `gorm:"type:text;not null" json:"genres"`
	Tagline     string `gorm:"type:text;not null" json:"tagline"`
	Description string `gorm:"type:text;not null" json:"description"`
	Poster      string `gorm:"type:text;not null" json:"poster"`

	OriginalTitle string `gorm:"type:text;not null" json:"original_title"`
	Language      string `gorm:"type:text;not null" json:"language"`
	Runtime       string `gorm:"type:text;not null" json:"runtime"`
	ReleaseYear   string `gorm:"type:text;not null" json:"release_year"`
	GenreFull     string `gorm:"type:text;not null" json:"genre_full"`
	Format        string `gorm:"type:text;not null" json:"format"`
	PlotSummary   string `gorm:"type:text;not null" json:"plot_summary"`
	AboutProject  string `gorm:"type:text;not null" json:"about_project"`
	WatchURL      string `gorm:"column:watch_url;type:text;not null" json:"watch_url"`

	Credits string `gorm:"type:text;not null" json:"-"`
	Gallery string `gorm:"type:text;not null" json:"-"`
	Tech    string `gorm:"type:text;not null" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
