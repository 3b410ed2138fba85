package blog

import "time"

type Post struct {
	Slug string `gorm:"type:text;primaryKey" json:"slug"`

	Title      string `gorm:"type:text;not null" json:"title"`
	Excerpt    string `gorm:"type:text;not null" json:"excerpt"`
	Content    string `gorm:"type:text;not null" json:"content"`
	CoverImage string `gorm:"type:text;not null" json:"cover_image"`
	Published  bool   `gorm:"not null;index" json:"published"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string { return "blog_posts" }
