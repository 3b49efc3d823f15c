package institution

import (
	"time"

	"fintech-directory/internal/domain/apperr"
	"fintech-directory/internal/domain/jsoncol"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = apperr.New(apperr.NotFound, "Institution not found")
	ErrSlugTaken       = apperr.New(apperr.Conflict, "Institution with this slug already exists")
	ErrInvalidCategory = apperr.New(apperr.Validation, "Invalid institution category")
	ErrInvalidRisk     = apperr.New(apperr.Validation, "Invalid accepted risk level")
)

type Category string

const (
	CategoryEMI    Category = "EMI"
	CategoryBank   Category = "BANK"
	CategoryPSP    Category = "PSP"
	CategoryCrypto Category = "CRYPTO"
	CategoryOther  Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryEMI, CategoryBank, CategoryPSP, CategoryCrypto, CategoryOther:
		return true
	}
	return false
}

type Risk string

const (
	RiskLow    Risk = "LOW"
	RiskMedium Risk = "MEDIUM"
	RiskHigh   Risk = "HIGH"
)

func (r Risk) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Table: institutions. Rows are never removed; IsActive=false hides them.
type Institution struct {
	ID          string `gorm:"column:id;primaryKey;size:32" json:"id"`
	Name        string `gorm:"column:name;size:191;not null" json:"name"`
	Slug        string `gorm:"column:slug;size:191;not null;uniqueIndex:ux_institutions_slug" json:"slug"`
	Logo        string `gorm:"column:logo;size:512" json:"logo,omitempty"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`
	Website     string `gorm:"column:website;size:512" json:"website,omitempty"`

	MonthlyFee      decimal.NullDecimal `gorm:"column:monthly_fee;type:decimal(12,2)" json:"monthlyFee"`
	SetupFee        decimal.NullDecimal `gorm:"column:setup_fee;type:decimal(12,2)" json:"setupFee"`
	TransactionFees string              `gorm:"column:transaction_fees;size:255" json:"transactionFees,omitempty"`
	MinTurnover     decimal.NullDecimal `gorm:"column:min_turnover;type:decimal(18,2)" json:"minTurnover"`

	Countries           jsoncol.StringList `gorm:"column:countries" json:"countries"`
	SupportedCurrencies jsoncol.StringList `gorm:"column:supported_currencies" json:"supportedCurrencies"`
	Category            Category           `gorm:"column:category;size:16;not null;index" json:"category"`
	AcceptedRisk        Risk               `gorm:"column:accepted_risk;size:16;not null" json:"acceptedRisk"`

	IsPartner     bool     `gorm:"column:is_partner;not null;default:false" json:"isPartner"`
	IsVerified    bool     `gorm:"column:is_verified;not null;default:false" json:"isVerified"`
	IsRecommended bool     `gorm:"column:is_recommended;not null;default:false" json:"isRecommended"`
	Rating        *float64 `gorm:"column:rating" json:"rating"`
	ReviewCount   int      `gorm:"column:review_count;not null;default:0" json:"reviewCount"`

	RequiredDocuments jsoncol.StringList `gorm:"column:required_documents" json:"requiredDocuments"`

	IsActive  bool      `gorm:"column:is_active;not null;index" json:"isActive"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Institution) TableName() string { return "institutions" }

// RequestSummary is the applicant-light view of an onboarding request shown on an institution.
type RequestSummary struct {
	ID          string    `gorm:"column:id" json:"id"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
	ContactName string    `gorm:"column:contact_name" json:"contactName"`
	CompanyName string    `gorm:"column:company_name" json:"companyName"`
}

// Filter predicates are optional and combined with AND. Only active rows are ever listed.
type Filter struct {
	Query     string
	Category  Category
	Countries []string
	Risk      Risk
	IsPartner *bool
	MinRating *float64
}
