package galleries

import "time"

type Gallery struct {
	Slug string `gorm:"type:text;primaryKey" json:"slug"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Year        string `gorm:"type:text;not null" json:"year"`
	Location    string `gorm:"type:text;not null" json:"location"`
	Tagline     string `gorm:"type:text;not null" json:"tagline"`
	Description string `gorm:"type:text;not null" json:"description"`
	CoverImage  string `gorm:"type:text;not null" json:"cover_image"`

	// JSON text: list of image refs
	Images string `gorm:"type:text;not null" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
