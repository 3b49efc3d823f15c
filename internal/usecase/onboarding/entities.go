package onboarding

import (
	domain "fintech-directory/internal/domain/onboarding"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	FintechID           string            `json:"fintechId" validate:"required,hex32"`
	ContactEmail        string            `json:"contactEmail" validate:"required,email,max=255"`
	ContactName         string            `json:"contactName" validate:"required,max=255"`
	ContactPhone        *string           `json:"contactPhone" validate:"omitempty,max=64"`
	CompanyName         string            `json:"companyName" validate:"required,max=255"`
	CompanyType         string            `json:"companyType" validate:"required,max=128"`
	CompanyRegistration *string           `json:"companyRegistration" validate:"omitempty,max=128"`
	CompanyAddress      string            `json:"companyAddress" validate:"required"`
	CompanyCountry      string            `json:"companyCountry" validate:"required,max=64"`
	EstimatedTurnover   *decimal.Decimal  `json:"estimatedTurnover" validate:"required,gte=0"`
	BusinessDescription string            `json:"businessDescription" validate:"required"`
	Documents           []domain.Document `json:"documents" validate:"omitempty,dive"`
}

type UpdateStatusInput struct {
	Status      *domain.Status `json:"status" validate:"omitempty,oneof=PENDING REVIEW APPROVED REJECTED COMPLETED"`
	StatusNotes *string        `json:"statusNotes"`
}
