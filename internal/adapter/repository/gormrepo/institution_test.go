package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/jsoncol"
	"fintech-directory/internal/domain/onboarding"
	"fintech-directory/pkg/pagination"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestInstitution_CreateGetAndSlugUnique(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstitutionRepository(db)
	ctx := context.Background()

	in := makeInstitution("revolut", func(in *institution.Institution) {
		in.MonthlyFee = decimal.NewNullDecimal(decimal.RequireFromString("19.90"))
		in.SupportedCurrencies = jsoncol.StringList{"EUR", "GBP"}
		in.Rating = ptr(4.5)
	})
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Slug != "revolut" || !got.MonthlyFee.Valid || !got.MonthlyFee.Decimal.Equal(decimal.RequireFromString("19.9")) {
		t.Fatalf("unexpected row: %+v", got)
	}
	if len(got.SupportedCurrencies) != 2 || got.SupportedCurrencies[1] != "GBP" {
		t.Fatalf("currencies = %v", got.SupportedCurrencies)
	}
	if got.SetupFee.Valid {
		t.Fatalf("setup fee should be NULL")
	}

	bySlug, err := repo.GetBySlug(ctx, "revolut")
	if err != nil || bySlug.ID != in.ID {
		t.Fatalf("GetBySlug: %v %+v", err, bySlug)
	}

	if err := repo.Create(ctx, makeInstitution("revolut")); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate slug err = %v, want gorm.ErrDuplicatedKey", err)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing id err = %v", err)
	}
}

func TestInstitution_ListFiltersAndPaging(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstitutionRepository(db)
	ctx := context.Background()

	seed := []*institution.Institution{
		makeInstitution("a-bank", func(in *institution.Institution) {
			in.Name = "Alpha Bank"
			in.Category = institution.CategoryBank
			in.Countries = jsoncol.StringList{"UK", "IE"}
			in.Rating = ptr(4.8)
			in.IsPartner = true
		}),
		makeInstitution("b-emi", func(in *institution.Institution) {
			in.Name = "Beta"
			in.Description = "Instant IBAN for startups"
			in.Countries = jsoncol.StringList{"FR"}
			in.Rating = ptr(3.9)
		}),
		makeInstitution("c-psp", func(in *institution.Institution) {
			in.Name = "Gamma Pay"
			in.Category = institution.CategoryPSP
			in.Countries = jsoncol.StringList{"DE"}
			in.AcceptedRisk = institution.RiskHigh
		}),
		makeInstitution("d-gone", func(in *institution.Institution) {
			in.IsActive = false
			in.Countries = jsoncol.StringList{"UK"}
		}),
	}
	for _, in := range seed {
		if err := repo.Create(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", in.Slug, err)
		}
	}

	p := pagination.Params{Page: 1, Limit: 10, SortBy: "name", SortOrder: pagination.Asc}
	tests := []struct {
		name  string
		f     institution.Filter
		slugs []string
	}{
		{"active only", institution.Filter{}, []string{"a-bank", "b-emi", "c-psp"}},
		{"query on description, case-insensitive", institution.Filter{Query: "iban"}, []string{"b-emi"}},
		{"category", institution.Filter{Category: institution.CategoryPSP}, []string{"c-psp"}},
		{"countries any-of", institution.Filter{Countries: []string{"UK", "DE"}}, []string{"a-bank", "c-psp"}},
		{"risk", institution.Filter{Risk: institution.RiskHigh}, []string{"c-psp"}},
		{"partner", institution.Filter{IsPartner: ptr(true)}, []string{"a-bank"}},
		{"min rating", institution.Filter{MinRating: ptr(4.0)}, []string{"a-bank"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, total, err := repo.List(ctx, tt.f, p)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if int(total) != len(tt.slugs) || len(rows) != len(tt.slugs) {
				t.Fatalf("total=%d rows=%d, want %d", total, len(rows), len(tt.slugs))
			}
			for i, s := range tt.slugs {
				if rows[i].Slug != s {
					t.Fatalf("row %d = %s, want %s", i, rows[i].Slug, s)
				}
			}
		})
	}

	rows, total, err := repo.List(ctx, institution.Filter{}, pagination.Params{Page: 2, Limit: 2, SortBy: "name", SortOrder: pagination.Asc})
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || len(rows) != 1 || rows[0].Slug != "c-psp" {
		t.Fatalf("page 2: total=%d rows=%v", total, rows)
	}
}

func TestInstitution_RequestSummariesNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstitutionRepository(db)
	reqs := NewOnboardingRepository(db)
	ctx := context.Background()

	in := makeInstitution("qonto")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	older := makeRequest(in.ID, onboarding.StatusPending, base)
	newer := makeRequest(in.ID, onboarding.StatusReview, base.Add(time.Hour))
	for _, r := range []*onboarding.Request{older, newer} {
		if err := reqs.Create(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.ListRequestSummaries(ctx, in.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != newer.ID || got[0].Status != "REVIEW" || got[1].CompanyName != "Acme" {
		t.Fatalf("summaries = %+v", got)
	}
}

func TestInstitution_SaveAndSetActive(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstitutionRepository(db)
	ctx := context.Background()

	in := makeInstitution("wise")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatal(err)
	}
	in.Name = "Wise Business"
	in.IsVerified = true
	if err := repo.Save(ctx, in); err != nil {
		t.Fatal(err)
	}
	if err := repo.SetActive(ctx, in.ID, false); err != nil {
		t.Fatal(err)
	}
	got, _ := repo.GetByID(ctx, in.ID)
	if got.Name != "Wise Business" || !got.IsVerified || got.IsActive {
		t.Fatalf("after save/deactivate: %+v", got)
	}
}

func TestInstitution_UpsertKeepsID(t *testing.T) {
	db := openTestDB(t)
	repo := NewInstitutionRepository(db)
	ctx := context.Background()

	first := makeInstitution("mollie")
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatal(err)
	}
	second := makeInstitution("mollie", func(in *institution.Institution) { in.Name = "Mollie v2" })
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetBySlug(ctx, "mollie")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != first.ID || got.Name != "Mollie v2" {
		t.Fatalf("upsert result = %+v", got)
	}
}
