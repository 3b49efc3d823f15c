package gormrepo

import (
	"context"

	"fintech-directory/internal/domain/blog"
	"fintech-directory/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepository struct{ db *gorm.DB }

func NewBlogRepository(db *gorm.DB) *BlogRepository { return &BlogRepository{db: db} }

func (r *BlogRepository) Create(ctx context.Context, p *blog.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// Upsert inserts p or overwrites the row with the same slug.
func (r *BlogRepository) Upsert(ctx context.Context, p *blog.Post) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "excerpt", "content", "category", "tags", "author", "published_at", "is_published", "locale", "updated_at"}),
	}).Create(p).Error
}

func (r *BlogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&blog.Post{}).Where("slug = ?", slug).Count(&n).Error
	return n > 0, err
}

func (r *BlogRepository) List(ctx context.Context, f blog.Filter, p pagination.Params) ([]blog.Post, int64, error) {
	q := where(r.db.WithContext(ctx).Model(&blog.Post{}), blogConditions(f))
	return page[blog.Post](q, blogSort, p)
}
