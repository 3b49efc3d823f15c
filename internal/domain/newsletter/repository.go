package newsletter

import (
	"context"

	"fintech-directory/pkg/pagination"
)

type Repository interface {
	// GetByEmail returns gorm.ErrRecordNotFound when the address is unknown.
	GetByEmail(ctx context.Context, email string) (*Subscriber, error)
	Create(ctx context.Context, s *Subscriber) error
	SetActive(ctx context.Context, email string, active bool) error
	List(ctx context.Context, f Filter, p pagination.Params) ([]Subscriber, int64, error)
}
