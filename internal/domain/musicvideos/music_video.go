package musicvideos

import "time"

type MusicVideo struct {
	Slug string `gorm:"type:text;primaryKey" json:"slug"`

	Title       string `gorm:"type:text;not null" json:"title"`
	Artist      string `gorm:"type:text;not null" json:"artist"`
	Year        string `gorm:"type:text;not null" json:"year"`
	VideoURL    string `gorm:"column:video_url;type:text;not null" json:"video_url"`
	Thumbnail   string `gorm:"type:text;not null" json:"thumbnail"`
	Description string `gorm:"type:text;not null" json:"description"`

	Credits string `gorm:"type:text;not null" json:"-"`
	Gallery string `gorm:"type:text;not null" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
