package filmsapi

import (
	"context"

	"portfolio-api/internal/domain/films"

	"gorm.io/gorm"
)

func filmsQuery(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Model(&films.Film{})
}

func filmBySlugQuery(ctx context.Context, db *gorm.DB, slug string) *gorm.DB {
	return filmsQuery(ctx, db).Where("slug = ?", slug)
}
