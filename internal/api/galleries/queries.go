package galleriesapi

import (
	"context"

	"portfolio-api/internal/domain/galleries"

	"gorm.io/gorm"
)

func galleriesQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Model(&galleries.Gallery{})
}

func galleryBySlugQuery(ctx context.Context, db *gorm.DB, slug string) *gorm.DB {
	return galleriesQuery(ctx, db).Where("slug = ?", slug)
}
