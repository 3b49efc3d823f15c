package stats

import (
	"time"

	domain "fintech-directory/internal/domain/stats"
)

type Overview struct {
	TotalFintechs               int64   `json:"totalFintechs"`
	TotalRequests               int64   `json:"totalRequests"`
	PendingRequests             int64   `json:"pendingRequests"`
	ApprovedRequests            int64   `json:"approvedRequests"`
	RejectedRequests            int64   `json:"rejectedRequests"`
	CompletedRequests           int64   `json:"completedRequests"`
	MonthlyRequests             int64   `json:"monthlyRequests"`
	RequestGrowth               float64 `json:"requestGrowth"`
	TotalNewsletterSubscribers  int64   `json:"totalNewsletterSubscribers"`
	ActiveNewsletterSubscribers int64   `json:"activeNewsletterSubscribers"`
	MonthlyNewsletterSignups    int64   `json:"monthlyNewsletterSignups"`
}

type RecentFintech struct {
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Category string `json:"category"`
}

type RecentRequest struct {
	ID           string         `json:"id"`
	CompanyName  string         `json:"companyName"`
	ContactName  string         `json:"contactName"`
	ContactEmail string         `json:"contactEmail"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
	Fintech      *RecentFintech `json:"fintech"`
}

type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type Charts struct {
	StatusDistribution map[string]int64 `json:"statusDistribution"`
	MonthlyTrends      []MonthCount     `json:"monthlyTrends"`
	ConversionRate     float64          `json:"conversionRate"`
}

type Dashboard struct {
	Overview        Overview                    `json:"overview"`
	PopularFintechs []domain.PopularInstitution `json:"popularFintechs"`
	RecentRequests  []RecentRequest             `json:"recentRequests"`
	Charts          Charts                      `json:"charts"`
}
