package uow

import (
	"context"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/onboarding"
)

// Repos are bound to the same transaction.
type Repos struct {
	Institutions institution.Repository
	Onboarding   onboarding.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
