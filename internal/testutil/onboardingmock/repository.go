package onboardingmock

import (
	"context"

	domain "fintech-directory/internal/domain/onboarding"
	"fintech-directory/pkg/pagination"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, r *domain.Request) error
	GetByIDFn func(ctx context.Context, id string) (*domain.Request, error)
	SaveFn    func(ctx context.Context, r *domain.Request) error
	DeleteFn  func(ctx context.Context, id string) error
	ListFn    func(ctx context.Context, f domain.Filter, p pagination.Params) ([]domain.Request, int64, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.Filter, p pagination.Params) ([]domain.Request, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f, p)
	}
	return nil, 0, nil
}
