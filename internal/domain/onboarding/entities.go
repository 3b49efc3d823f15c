package onboarding

import (
	"database/sql/driver"
	"time"

	"fintech-directory/internal/domain/apperr"
	"fintech-directory/internal/domain/jsoncol"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound               = apperr.New(apperr.NotFound, "Onboarding request not found")
	ErrInstitutionUnavailable = apperr.New(apperr.Validation, "Institution not found or inactive")
	ErrInvalidStatus          = apperr.New(apperr.Validation, "Invalid onboarding status")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusReview    Status = "REVIEW"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusReview, StatusApproved, StatusRejected, StatusCompleted}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Document describes a file previously stored through the upload endpoint.
type Document struct {
	ID           string    `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	Mimetype     string    `json:"mimetype"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	DocumentType string    `json:"documentType,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Documents []Document

func (d Documents) Value() (driver.Value, error) { return jsoncol.Value([]Document(d), d == nil) }
func (d *Documents) Scan(src any) error          { return jsoncol.Scan(src, (*[]Document)(d)) }
func (Documents) GormDataType() string           { return "text" }

// InstitutionRef is the public slice of an institution attached to a request.
type InstitutionRef struct {
	ID       string `gorm:"column:id" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	Slug     string `gorm:"column:slug" json:"slug"`
	Logo     string `gorm:"column:logo" json:"logo,omitempty"`
	Category string `gorm:"column:category" json:"category"`
	Website  string `gorm:"column:website" json:"website,omitempty"`
}

// Table: onboarding_requests. Hard-deleted only.
type Request struct {
	ID        string `gorm:"column:id;primaryKey;size:32" json:"id"`
	FintechID string `gorm:"column:fintech_id;size:32;not null;index" json:"fintechId"`

	ContactEmail string  `gorm:"column:contact_email;size:255;not null" json:"contactEmail"`
	ContactName  string  `gorm:"column:contact_name;size:255;not null" json:"contactName"`
	ContactPhone *string `gorm:"column:contact_phone;size:64" json:"contactPhone,omitempty"`

	CompanyName         string  `gorm:"column:company_name;size:255;not null" json:"companyName"`
	CompanyType         string  `gorm:"column:company_type;size:128;not null" json:"companyType"`
	CompanyRegistration *string `gorm:"column:company_registration;size:128" json:"companyRegistration,omitempty"`
	CompanyAddress      string  `gorm:"column:company_address;type:text;not null" json:"companyAddress"`
	CompanyCountry      string  `gorm:"column:company_country;size:64;not null" json:"companyCountry"`

	EstimatedTurnover   decimal.Decimal `gorm:"column:estimated_turnover;type:decimal(18,2);not null" json:"estimatedTurnover"`
	BusinessDescription string          `gorm:"column:business_description;type:text;not null" json:"businessDescription"`
	Documents           Documents       `gorm:"column:documents" json:"documents,omitempty"`

	Status      Status  `gorm:"column:status;size:16;not null;default:PENDING;index" json:"status"`
	StatusNotes *string `gorm:"column:status_notes;type:text" json:"statusNotes,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Fintech *InstitutionRef `gorm:"-" json:"fintech,omitempty"`
}

func (Request) TableName() string { return "onboarding_requests" }

// Filter predicates are optional exact matches.
type Filter struct {
	Status    Status
	FintechID string
}
