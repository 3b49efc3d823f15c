package gormrepo

import (
	"context"

	"fintech-directory/internal/domain/newsletter"
	"fintech-directory/pkg/pagination"

	"gorm.io/gorm"
)

type NewsletterRepository struct{ db *gorm.DB }

func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	var out newsletter.Subscriber
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *NewsletterRepository) Create(ctx context.Context, s *newsletter.Subscriber) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *NewsletterRepository) SetActive(ctx context.Context, email string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&newsletter.Subscriber{}).
		Where("email = ?", email).
		Update("is_active", active).Error
}

func (r *NewsletterRepository) List(ctx context.Context, f newsletter.Filter, p pagination.Params) ([]newsletter.Subscriber, int64, error) {
	q := where(r.db.WithContext(ctx).Model(&newsletter.Subscriber{}), newsletterConditions(f))
	return page[newsletter.Subscriber](q, newsletterSort, p)
}
