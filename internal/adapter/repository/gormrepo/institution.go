package gormrepo

import (
	"context"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/onboarding"
	"fintech-directory/pkg/pagination"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InstitutionRepository struct{ db *gorm.DB }

func NewInstitutionRepository(db *gorm.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

func (r *InstitutionRepository) Create(ctx context.Context, in *institution.Institution) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *InstitutionRepository) Save(ctx context.Context, in *institution.Institution) error {
	return r.db.WithContext(ctx).Save(in).Error
}

func (r *InstitutionRepository) GetByID(ctx context.Context, id string) (*institution.Institution, error) {
	var out institution.Institution
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *InstitutionRepository) GetBySlug(ctx context.Context, slug string) (*institution.Institution, error) {
	var out institution.Institution
	res := r.db.WithContext(ctx).Where("slug = ?", slug).First(&out)
	return &out, res.Error
}

func (r *InstitutionRepository) List(ctx context.Context, f institution.Filter, p pagination.Params) ([]institution.Institution, int64, error) {
	q := where(r.db.WithContext(ctx).Model(&institution.Institution{}), institutionConditions(f))
	return page[institution.Institution](q, institutionSort, p)
}

func (r *InstitutionRepository) ListRequestSummaries(ctx context.Context, institutionID string) ([]institution.RequestSummary, error) {
	var out []institution.RequestSummary
	err := r.db.WithContext(ctx).
		Model(&onboarding.Request{}).
		Select("id, status, created_at, contact_name, company_name").
		Where("fintech_id = ?", institutionID).
		Order("created_at DESC, id ASC").
		Scan(&out).Error
	return out, err
}

// SetActive does not report missing rows; MySQL counts unchanged rows as unaffected.
func (r *InstitutionRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).
		Model(&institution.Institution{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// Upsert inserts in or overwrites the row with the same slug, keeping its id.
func (r *InstitutionRepository) Upsert(ctx context.Context, in *institution.Institution) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		UpdateAll: true,
	}).Create(in).Error
}
