package gormrepo

import (
	"context"
	"time"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/newsletter"
	"fintech-directory/internal/domain/onboarding"
	"fintech-directory/internal/domain/stats"

	"gorm.io/gorm"
)

// StatsReader serves the dashboard aggregates. Every method is a single read.
type StatsReader struct{ db *gorm.DB }

func NewStatsReader(db *gorm.DB) *StatsReader { return &StatsReader{db: db} }

func (r *StatsReader) CountActiveInstitutions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&institution.Institution{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *StatsReader) CountRequests(ctx context.Context, q stats.RequestCount) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&onboarding.Request{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From)
	}
	if !q.Before.IsZero() {
		tx = tx.Where("created_at < ?", q.Before)
	}
	var n int64
	err := tx.Count(&n).Error
	return n, err
}

func (r *StatsReader) CountSubscribers(ctx context.Context, q stats.SubscriberCount) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&newsletter.Subscriber{})
	if q.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}
	if !q.Since.IsZero() {
		tx = tx.Where("subscribed_at >= ?", q.Since)
	}
	var n int64
	err := tx.Count(&n).Error
	return n, err
}

func (r *StatsReader) PopularInstitutions(ctx context.Context, limit int) ([]stats.PopularInstitution, error) {
	var out []stats.PopularInstitution
	err := r.db.WithContext(ctx).
		Table("institutions AS i").
		Select("i.id, i.name, i.slug, i.logo, i.category, i.rating, i.is_partner, COUNT(r.id) AS request_count").
		Joins("LEFT JOIN onboarding_requests AS r ON r.fintech_id = i.id").
		Where("i.is_active = ?", true).
		Group("i.id, i.name, i.slug, i.logo, i.category, i.rating, i.is_partner").
		Order("request_count DESC, i.id ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *StatsReader) RecentRequests(ctx context.Context, limit int) ([]onboarding.Request, error) {
	var out []onboarding.Request
	err := r.db.WithContext(ctx).Order("created_at DESC, id ASC").Limit(limit).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, attachInstitutions(ctx, r.db, out)
}

func (r *StatsReader) RequestsByStatus(ctx context.Context) ([]stats.StatusCount, error) {
	var out []stats.StatusCount
	err := r.db.WithContext(ctx).
		Model(&onboarding.Request{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&out).Error
	return out, err
}

func (r *StatsReader) RequestTimestamps(ctx context.Context, since time.Time) ([]time.Time, error) {
	var out []time.Time
	err := r.db.WithContext(ctx).
		Model(&onboarding.Request{}).
		Where("created_at >= ?", since).
		Order("created_at ASC").
		Pluck("created_at", &out).Error
	return out, err
}
