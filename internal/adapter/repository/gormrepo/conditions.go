package gormrepo

import (
	"fmt"
	"strings"

	"fintech-directory/internal/domain/blog"
	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/newsletter"
	"fintech-directory/internal/domain/onboarding"
	"fintech-directory/pkg/pagination"

	"gorm.io/gorm"
)

// condition is one WHERE fragment. Filters are turned into conditions by pure functions
// so the translation can be tested without a database.
type condition struct {
	Query string
	Args  []any
}

func where(db *gorm.DB, conds []condition) *gorm.DB {
	for _, c := range conds {
		db = db.Where(c.Query, c.Args...)
	}
	return db
}

func contains(s string) string { return "%" + strings.ToLower(strings.TrimSpace(s)) + "%" }

// anyOf matches rows whose JSON list column holds at least one of values.
func anyOf(column string, values []string) (condition, bool) {
	var (
		parts []string
		args  []any
	)
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		parts = append(parts, column+" LIKE ?")
		args = append(args, `%"`+v+`"%`)
	}
	if len(parts) == 0 {
		return condition{}, false
	}
	return condition{Query: "(" + strings.Join(parts, " OR ") + ")", Args: args}, true
}

func institutionConditions(f institution.Filter) []condition {
	conds := []condition{{Query: "is_active = ?", Args: []any{true}}}
	if q := strings.TrimSpace(f.Query); q != "" {
		like := contains(q)
		conds = append(conds, condition{Query: "(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", Args: []any{like, like}})
	}
	if f.Category != "" {
		conds = append(conds, condition{Query: "category = ?", Args: []any{f.Category}})
	}
	if c, ok := anyOf("countries", f.Countries); ok {
		conds = append(conds, c)
	}
	if f.Risk != "" {
		conds = append(conds, condition{Query: "accepted_risk = ?", Args: []any{f.Risk}})
	}
	if f.IsPartner != nil {
		conds = append(conds, condition{Query: "is_partner = ?", Args: []any{*f.IsPartner}})
	}
	if f.MinRating != nil {
		conds = append(conds, condition{Query: "rating >= ?", Args: []any{*f.MinRating}})
	}
	return conds
}

func onboardingConditions(f onboarding.Filter) []condition {
	var conds []condition
	if f.Status != "" {
		conds = append(conds, condition{Query: "status = ?", Args: []any{f.Status}})
	}
	if f.FintechID != "" {
		conds = append(conds, condition{Query: "fintech_id = ?", Args: []any{f.FintechID}})
	}
	return conds
}

func blogConditions(f blog.Filter) []condition {
	var conds []condition
	if q := strings.TrimSpace(f.Query); q != "" {
		like := contains(q)
		conds = append(conds, condition{
			Query: "(LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ?)",
			Args:  []any{like, like, like},
		})
	}
	if f.Category != "" {
		conds = append(conds, condition{Query: "category = ?", Args: []any{f.Category}})
	}
	if f.Locale != "" {
		conds = append(conds, condition{Query: "locale = ?", Args: []any{f.Locale}})
	}
	if f.IsPublished != nil {
		conds = append(conds, condition{Query: "is_published = ?", Args: []any{*f.IsPublished}})
	}
	if f.PublishedBefore != nil {
		conds = append(conds, condition{Query: "published_at IS NOT NULL AND published_at <= ?", Args: []any{*f.PublishedBefore}})
	}
	return conds
}

func newsletterConditions(f newsletter.Filter) []condition {
	if f.IsActive == nil {
		return nil
	}
	return []condition{{Query: "is_active = ?", Args: []any{*f.IsActive}}}
}

// sortable maps public camelCase sort keys to columns.
type sortable struct {
	columns map[string]string
	def     string
}

var (
	institutionSort = sortable{def: "created_at", columns: map[string]string{
		"id": "id", "name": "name", "slug": "slug", "description": "description", "website": "website",
		"monthlyFee": "monthly_fee", "setupFee": "setup_fee", "transactionFees": "transaction_fees",
		"minTurnover": "min_turnover", "category": "category", "acceptedRisk": "accepted_risk",
		"isPartner": "is_partner", "isVerified": "is_verified", "isRecommended": "is_recommended",
		"rating": "rating", "reviewCount": "review_count", "isActive": "is_active",
		"createdAt": "created_at", "updatedAt": "updated_at",
	}}
	onboardingSort = sortable{def: "created_at", columns: map[string]string{
		"id": "id", "fintechId": "fintech_id", "contactEmail": "contact_email", "contactName": "contact_name",
		"companyName": "company_name", "companyType": "company_type", "companyCountry": "company_country",
		"estimatedTurnover": "estimated_turnover", "status": "status",
		"createdAt": "created_at", "updatedAt": "updated_at",
	}}
	blogSort = sortable{def: "published_at", columns: map[string]string{
		"id": "id", "title": "title", "slug": "slug", "category": "category", "author": "author",
		"locale": "locale", "isPublished": "is_published", "publishedAt": "published_at",
		"createdAt": "created_at", "updatedAt": "updated_at",
	}}
	newsletterSort = sortable{def: "subscribed_at", columns: map[string]string{
		"id": "id", "email": "email", "isActive": "is_active",
		"subscribedAt": "subscribed_at", "updatedAt": "updated_at",
	}}
)

// order renders ORDER BY; unknown keys fall back to the default column and ties break on id.
func (s sortable) order(p pagination.Params) string {
	col, ok := s.columns[p.SortBy]
	if !ok {
		col = s.def
	}
	dir := "DESC"
	if p.SortOrder == pagination.Asc {
		dir = "ASC"
	}
	if col == "id" {
		return "id " + dir
	}
	return fmt.Sprintf("%s %s, id ASC", col, dir)
}

// page applies order, limit and offset, and counts matches before paging.
func page[T any](db *gorm.DB, s sortable, p pagination.Params) ([]T, int64, error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []T
	if total == 0 {
		return out, 0, nil
	}
	err := db.Order(s.order(p)).Limit(p.Limit).Offset(p.Offset()).Find(&out).Error
	return out, total, err
}
