package blog

import (
	"context"

	"fintech-directory/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, f Filter, p pagination.Params) ([]Post, int64, error)
}
