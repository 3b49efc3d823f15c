package institutionmock

import (
	"context"

	domain "fintech-directory/internal/domain/institution"
	"fintech-directory/pkg/pagination"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled; unset writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, in *domain.Institution) error
	SaveFn                 func(ctx context.Context, in *domain.Institution) error
	GetByIDFn              func(ctx context.Context, id string) (*domain.Institution, error)
	GetBySlugFn            func(ctx context.Context, slug string) (*domain.Institution, error)
	ListFn                 func(ctx context.Context, f domain.Filter, p pagination.Params) ([]domain.Institution, int64, error)
	ListRequestSummariesFn func(ctx context.Context, institutionID string) ([]domain.RequestSummary, error)
	SetActiveFn            func(ctx context.Context, id string, active bool) error
}

func (m *Repo) Create(ctx context.Context, in *domain.Institution) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, in)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, in *domain.Institution) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, in)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Institution, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Institution, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.Filter, p pagination.Params) ([]domain.Institution, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f, p)
	}
	return nil, 0, nil
}

func (m *Repo) ListRequestSummaries(ctx context.Context, institutionID string) ([]domain.RequestSummary, error) {
	if m.ListRequestSummariesFn != nil {
		return m.ListRequestSummariesFn(ctx, institutionID)
	}
	return nil, nil
}

func (m *Repo) SetActive(ctx context.Context, id string, active bool) error {
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active)
	}
	return nil
}
