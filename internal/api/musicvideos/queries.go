package musicvideosapi

import (
	"context"

	"portfolio-api/internal/domain/musicvideos"

	"gorm.io/gorm"
)

func musicVideosQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Model(&musicvideos.MusicVideo{})
}

func musicVideoBySlugQuery(ctx context.Context, db *gorm.DB, slug string) *gorm.DB {
	return musicVideosQuery(ctx, db).Where("slug = ?", slug)
}
