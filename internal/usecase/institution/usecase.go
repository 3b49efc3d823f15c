package institution

import (
	"context"
	"errors"
	"strings"

	domain "fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/jsoncol"
	"fintech-directory/pkg/id"
	"fintech-directory/pkg/pagination"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) List(ctx context.Context, f domain.Filter, p pagination.Params) (pagination.Page[domain.Institution], error) {
	p = p.Normalize(pagination.DefaultLimit)
	rows, total, err := u.repo.List(ctx, f, p)
	if err != nil {
		return pagination.Page[domain.Institution]{}, err
	}
	return pagination.NewPage(rows, p, total), nil
}

// Get returns any institution, active or not, with its onboarding request summaries.
func (u *Usecase) Get(ctx context.Context, id string) (*Detail, error) {
	in, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	reqs, err := u.repo.ListRequestSummaries(ctx, id)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []domain.RequestSummary{}
	}
	return &Detail{Institution: *in, OnboardingRequests: reqs}, nil
}

// GetBySlug only resolves active institutions.
func (u *Usecase) GetBySlug(ctx context.Context, slug string) (*domain.Institution, error) {
	in, err := u.repo.GetBySlug(ctx, slug)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, domain.ErrNotFound
	case err != nil:
		return nil, err
	case !in.IsActive:
		return nil, domain.ErrNotFound
	}
	return in, nil
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Institution, error) {
	if err := checkEnums(&in.Category, &in.AcceptedRisk); err != nil {
		return nil, err
	}
	slug := strings.TrimSpace(in.Slug)
	if err := u.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}

	out := &domain.Institution{
		ID:                  id.NewID32(),
		Name:                strings.TrimSpace(in.Name),
		Slug:                slug,
		Logo:                in.Logo,
		Description:         in.Description,
		Website:             in.Website,
		MonthlyFee:          nullable(in.MonthlyFee),
		SetupFee:            nullable(in.SetupFee),
		TransactionFees:     in.TransactionFees,
		MinTurnover:         nullable(in.MinTurnover),
		Countries:           jsoncol.StringList(in.Countries),
		SupportedCurrencies: list(in.SupportedCurrencies),
		Category:            in.Category,
		AcceptedRisk:        in.AcceptedRisk,
		IsPartner:           in.IsPartner,
		IsVerified:          in.IsVerified,
		IsRecommended:       in.IsRecommended,
		Rating:              in.Rating,
		ReviewCount:         in.ReviewCount,
		RequiredDocuments:   list(in.RequiredDocuments),
		IsActive:            true,
	}
	if err := u.repo.Create(ctx, out); err != nil {
		return nil, slugConflict(err)
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, id string, in UpdateInput) (*domain.Institution, error) {
	if err := checkEnums(in.Category, in.AcceptedRisk); err != nil {
		return nil, err
	}
	cur, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Slug != nil {
		slug := strings.TrimSpace(*in.Slug)
		if slug != cur.Slug {
			if err := u.ensureSlugFree(ctx, slug, cur.ID); err != nil {
				return nil, err
			}
		}
		cur.Slug = slug
	}
	apply(cur, in)

	if err := u.repo.Save(ctx, cur); err != nil {
		return nil, slugConflict(err)
	}
	return cur, nil
}

// Delete hides the institution. Its onboarding requests are kept.
func (u *Usecase) Delete(ctx context.Context, id string) error {
	if _, err := u.load(ctx, id); err != nil {
		return err
	}
	return u.repo.SetActive(ctx, id, false)
}

func (u *Usecase) load(ctx context.Context, id string) (*domain.Institution, error) {
	in, err := u.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return in, err
}

// ensureSlugFree fails with ErrSlugTaken when slug belongs to a row other than selfID.
func (u *Usecase) ensureSlugFree(ctx context.Context, slug, selfID string) error {
	other, err := u.repo.GetBySlug(ctx, slug)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	case other.ID != selfID:
		return domain.ErrSlugTaken
	}
	return nil
}

// checkEnums rejects unknown values; nil means "not provided".
func checkEnums(c *domain.Category, r *domain.Risk) error {
	if c != nil && !c.Valid() {
		return domain.ErrInvalidCategory
	}
	if r != nil && !r.Valid() {
		return domain.ErrInvalidRisk
	}
	return nil
}

// slugConflict maps a unique-index violation that raced past ensureSlugFree.
func slugConflict(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrSlugTaken
	}
	return err
}

func apply(cur *domain.Institution, in UpdateInput) {
	if in.Name != nil {
		cur.Name = strings.TrimSpace(*in.Name)
	}
	if in.Logo != nil {
		cur.Logo = *in.Logo
	}
	if in.Description != nil {
		cur.Description = *in.Description
	}
	if in.Website != nil {
		cur.Website = *in.Website
	}
	if in.MonthlyFee != nil {
		cur.MonthlyFee = nullable(in.MonthlyFee)
	}
	if in.SetupFee != nil {
		cur.SetupFee = nullable(in.SetupFee)
	}
	if in.TransactionFees != nil {
		cur.TransactionFees = *in.TransactionFees
	}
	if in.MinTurnover != nil {
		cur.MinTurnover = nullable(in.MinTurnover)
	}
	if in.Countries != nil {
		cur.Countries = jsoncol.StringList(in.Countries)
	}
	if in.SupportedCurrencies != nil {
		cur.SupportedCurrencies = jsoncol.StringList(in.SupportedCurrencies)
	}
	if in.Category != nil {
		cur.Category = *in.Category
	}
	if in.AcceptedRisk != nil {
		cur.AcceptedRisk = *in.AcceptedRisk
	}
	if in.IsPartner != nil {
		cur.IsPartner = *in.IsPartner
	}
	if in.IsVerified != nil {
		cur.IsVerified = *in.IsVerified
	}
	if in.IsRecommended != nil {
		cur.IsRecommended = *in.IsRecommended
	}
	if in.Rating != nil {
		cur.Rating = in.Rating
	}
	if in.ReviewCount != nil {
		cur.ReviewCount = *in.ReviewCount
	}
	if in.RequiredDocuments != nil {
		cur.RequiredDocuments = jsoncol.StringList(in.RequiredDocuments)
	}
	if in.IsActive != nil {
		cur.IsActive = *in.IsActive
	}
}

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func list(v []string) jsoncol.StringList {
	if v == nil {
		return jsoncol.StringList{}
	}
	return jsoncol.StringList(v)
}
