package stats

import (
	"context"
	"time"

	"fintech-directory/internal/domain/onboarding"
)

// RequestCount narrows an onboarding request count. Zero values mean "no constraint".
type RequestCount struct {
	Status onboarding.Status
	From   time.Time // inclusive
	Before time.Time // exclusive
}

// SubscriberCount narrows a newsletter subscriber count.
type SubscriberCount struct {
	ActiveOnly bool
	Since      time.Time
}

type PopularInstitution struct {
	ID           string   `gorm:"column:id" json:"id"`
	Name         string   `gorm:"column:name" json:"name"`
	Slug         string   `gorm:"column:slug" json:"slug"`
	Logo         string   `gorm:"column:logo" json:"logo,omitempty"`
	Category     string   `gorm:"column:category" json:"category"`
	RequestCount int64    `gorm:"column:request_count" json:"requestCount"`
	Rating       *float64 `gorm:"column:rating" json:"rating"`
	IsPartner    bool     `gorm:"column:is_partner" json:"isPartner"`
}

type StatusCount struct {
	Status onboarding.Status `gorm:"column:status"`
	Count  int64             `gorm:"column:count"`
}

// Reader is the read-only query surface behind the dashboard.
type Reader interface {
	CountActiveInstitutions(ctx context.Context) (int64, error)
	CountRequests(ctx context.Context, q RequestCount) (int64, error)
	CountSubscribers(ctx context.Context, q SubscriberCount) (int64, error)
	// PopularInstitutions orders active institutions by request count desc, then id.
	PopularInstitutions(ctx context.Context, limit int) ([]PopularInstitution, error)
	// RecentRequests returns the newest requests with their institution summary attached.
	RecentRequests(ctx context.Context, limit int) ([]onboarding.Request, error)
	RequestsByStatus(ctx context.Context) ([]StatusCount, error)
	// RequestTimestamps returns created_at of every request created at or after since.
	RequestTimestamps(ctx context.Context, since time.Time) ([]time.Time, error)
}
