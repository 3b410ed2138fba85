package blogapi

import (
	"context"

	"portfolio-api/internal/domain/blog"

	"gorm.io/gorm"
)

func publishedQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Model(&blog.Post{}).Where("published = ?", true)
}

func postBySlugQuery(ctx context.Context, db *gorm.DB, slug string) *gorm.DB {
	return db.WithContext(ctx).Model(&blog.Post{}).Where("slug = ?", slug)
}
