package institution

import (
	"context"

	"fintech-directory/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, in *Institution) error
	Save(ctx context.Context, in *Institution) error

	// Lookups return gorm.ErrRecordNotFound when nothing matches.
	GetByID(ctx context.Context, id string) (*Institution, error)
	GetBySlug(ctx context.Context, slug string) (*Institution, error)

	List(ctx context.Context, f Filter, p pagination.Params) ([]Institution, int64, error)
	// Onboarding requests for one institution, newest first.
	ListRequestSummaries(ctx context.Context, institutionID string) ([]RequestSummary, error)
	SetActive(ctx context.Context, id string, active bool) error
}
