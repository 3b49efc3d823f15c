package gormrepo

import (
	"context"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/onboarding"
	"fintech-directory/pkg/pagination"

	"gorm.io/gorm"
)

type OnboardingRepository struct{ db *gorm.DB }

func NewOnboardingRepository(db *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{db: db}
}

func (r *OnboardingRepository) Create(ctx context.Context, req *onboarding.Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *OnboardingRepository) GetByID(ctx context.Context, id string) (*onboarding.Request, error) {
	var out onboarding.Request
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	reqs := []onboarding.Request{out}
	if err := attachInstitutions(ctx, r.db, reqs); err != nil {
		return nil, err
	}
	return &reqs[0], nil
}

func (r *OnboardingRepository) Save(ctx context.Context, req *onboarding.Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *OnboardingRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&onboarding.Request{}).Error
}

func (r *OnboardingRepository) List(ctx context.Context, f onboarding.Filter, p pagination.Params) ([]onboarding.Request, int64, error) {
	q := where(r.db.WithContext(ctx).Model(&onboarding.Request{}), onboardingConditions(f))
	out, total, err := page[onboarding.Request](q, onboardingSort, p)
	if err != nil {
		return nil, 0, err
	}
	return out, total, attachInstitutions(ctx, r.db, out)
}

// attachInstitutions loads the institution summary for every request in one query.
func attachInstitutions(ctx context.Context, db *gorm.DB, reqs []onboarding.Request) error {
	if len(reqs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(reqs))
	ids := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.FintechID]; !ok {
			seen[r.FintechID] = struct{}{}
			ids = append(ids, r.FintechID)
		}
	}

	var refs []onboarding.InstitutionRef
	err := db.WithContext(ctx).
		Model(&institution.Institution{}).
		Select("id, name, slug, logo, category, website").
		Where("id IN ?", ids).
		Scan(&refs).Error
	if err != nil {
		return err
	}
	byID := make(map[string]onboarding.InstitutionRef, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}
	for i := range reqs {
		if ref, ok := byID[reqs[i].FintechID]; ok {
			reqs[i].Fintech = &ref
		}
	}
	return nil
}
