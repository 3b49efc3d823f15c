package onboarding

import (
	"context"

	"fintech-directory/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, r *Request) error
	// GetByID attaches the institution summary; gorm.ErrRecordNotFound when absent.
	GetByID(ctx context.Context, id string) (*Request, error)
	Save(ctx context.Context, r *Request) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filter, p pagination.Params) ([]Request, int64, error)
}
