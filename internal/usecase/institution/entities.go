package institution

import (
	domain "fintech-directory/internal/domain/institution"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	Name                string           `json:"name" validate:"required,max=191"`
	Slug                string           `json:"slug" validate:"required,slug,max=191"`
	Logo                string           `json:"logo" validate:"omitempty,max=512"`
	Description         string           `json:"description" validate:"required"`
	Website             string           `json:"website" validate:"omitempty,url,max=512"`
	MonthlyFee          *decimal.Decimal `json:"monthlyFee" validate:"omitempty,gte=0,dec2"`
	SetupFee            *decimal.Decimal `json:"setupFee" validate:"omitempty,gte=0,dec2"`
	TransactionFees     string           `json:"transactionFees" validate:"omitempty,max=255"`
	MinTurnover         *decimal.Decimal `json:"minTurnover" validate:"omitempty,gte=0"`
	Countries           []string         `json:"countries" validate:"required,min=1,dive,required"`
	SupportedCurrencies []string         `json:"supportedCurrencies" validate:"omitempty,dive,required"`
	Category            domain.Category  `json:"category" validate:"required,oneof=EMI BANK PSP CRYPTO OTHER"`
	AcceptedRisk        domain.Risk      `json:"acceptedRisk" validate:"required,oneof=LOW MEDIUM HIGH"`
	IsPartner           bool             `json:"isPartner"`
	IsVerified          bool             `json:"isVerified"`
	IsRecommended       bool             `json:"isRecommended"`
	Rating              *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount         int              `json:"reviewCount" validate:"gte=0"`
	RequiredDocuments   []string         `json:"requiredDocuments" validate:"omitempty,dive,required"`
}

// UpdateInput is a partial update; nil fields are left untouched.
type UpdateInput struct {
	Name                *string          `json:"name" validate:"omitempty,min=1,max=191"`
	Slug                *string          `json:"slug" validate:"omitempty,slug,max=191"`
	Logo                *string          `json:"logo" validate:"omitempty,max=512"`
	Description         *string          `json:"description" validate:"omitempty,min=1"`
	Website             *string          `json:"website" validate:"omitempty,url,max=512"`
	MonthlyFee          *decimal.Decimal `json:"monthlyFee" validate:"omitempty,gte=0,dec2"`
	SetupFee            *decimal.Decimal `json:"setupFee" validate:"omitempty,gte=0,dec2"`
	TransactionFees     *string          `json:"transactionFees" validate:"omitempty,max=255"`
	MinTurnover         *decimal.Decimal `json:"minTurnover" validate:"omitempty,gte=0"`
	Countries           []string         `json:"countries" validate:"omitempty,min=1,dive,required"`
	SupportedCurrencies []string         `json:"supportedCurrencies" validate:"omitempty,dive,required"`
	Category            *domain.Category `json:"category" validate:"omitempty,oneof=EMI BANK PSP CRYPTO OTHER"`
	AcceptedRisk        *domain.Risk     `json:"acceptedRisk" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	IsPartner           *bool            `json:"isPartner"`
	IsVerified          *bool            `json:"isVerified"`
	IsRecommended       *bool            `json:"isRecommended"`
	Rating              *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount         *int             `json:"reviewCount" validate:"omitempty,gte=0"`
	RequiredDocuments   []string         `json:"requiredDocuments" validate:"omitempty,dive,required"`
	IsActive            *bool            `json:"isActive"`
}

// Detail is an institution with the onboarding requests filed against it.
type Detail struct {
	domain.Institution
	OnboardingRequests []domain.RequestSummary `json:"onboardingRequests"`
}
