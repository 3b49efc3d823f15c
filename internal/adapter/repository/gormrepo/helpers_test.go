package gormrepo

import (
	"testing"
	"time"

	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/jsoncol"
	"fintech-directory/internal/domain/onboarding"
	"fintech-directory/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB holding the full schema.
// One connection only: every new connection to ":memory:" is a fresh database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeInstitution(slug string, mut ...func(*institution.Institution)) *institution.Institution {
	in := &institution.Institution{
		ID:           id.NewID32(),
		Name:         "Inst " + slug,
		Slug:         slug,
		Description:  "A licensed provider",
		Countries:    jsoncol.StringList{"FR"},
		Category:     institution.CategoryEMI,
		AcceptedRisk: institution.RiskMedium,
		IsActive:     true,
	}
	for _, m := range mut {
		m(in)
	}
	return in
}

func makeRequest(fintechID string, status onboarding.Status, created time.Time) *onboarding.Request {
	return &onboarding.Request{
		ID:                  id.NewID32(),
		FintechID:           fintechID,
		ContactEmail:        "jane@acme.io",
		ContactName:         "Jane",
		CompanyName:         "Acme",
		CompanyType:         "SAS",
		CompanyAddress:      "1 rue de Paris",
		CompanyCountry:      "FR",
		EstimatedTurnover:   decimal.NewFromInt(100000),
		BusinessDescription: "Marketplace",
		Status:              status,
		CreatedAt:           created,
	}
}

func ptr[T any](v T) *T { return &v }
