package stats

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"fintech-directory/internal/domain/onboarding"
	domain "fintech-directory/internal/domain/stats"

	"golang.org/x/sync/errgroup"
)

const (
	popularLimit = 5
	recentLimit  = 10
	trendMonths  = 6
)

type Usecase struct {
	r   domain.Reader
	now func() time.Time
}

func NewUsecase(r domain.Reader) *Usecase {
	return &Usecase{r: r, now: func() time.Time { return time.Now().UTC() }}
}

// Dashboard runs every aggregate concurrently. The result is not a consistent snapshot.
func (u *Usecase) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := u.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevMonthStart := monthStart.AddDate(0, -1, 0)
	trendStart := monthStart.AddDate(0, -(trendMonths - 1), 0)

	var (
		ov         Overview
		lastMonth  int64
		popular    []domain.PopularInstitution
		recent     []onboarding.Request
		byStatus   []domain.StatusCount
		timestamps []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			*dst = n
			return err
		})
	}
	requests := func(q domain.RequestCount) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) { return u.r.CountRequests(ctx, q) }
	}
	subscribers := func(q domain.SubscriberCount) func(context.Context) (int64, error) {
		return func(ctx context.Context) (int64, error) { return u.r.CountSubscribers(ctx, q) }
	}

	count(&ov.TotalFintechs, u.r.CountActiveInstitutions)
	count(&ov.TotalRequests, requests(domain.RequestCount{}))
	count(&ov.PendingRequests, requests(domain.RequestCount{Status: onboarding.StatusPending}))
	count(&ov.ApprovedRequests, requests(domain.RequestCount{Status: onboarding.StatusApproved}))
	count(&ov.RejectedRequests, requests(domain.RequestCount{Status: onboarding.StatusRejected}))
	count(&ov.CompletedRequests, requests(domain.RequestCount{Status: onboarding.StatusCompleted}))
	count(&ov.MonthlyRequests, requests(domain.RequestCount{From: monthStart}))
	count(&lastMonth, requests(domain.RequestCount{From: prevMonthStart, Before: monthStart}))
	count(&ov.TotalNewsletterSubscribers, subscribers(domain.SubscriberCount{}))
	count(&ov.ActiveNewsletterSubscribers, subscribers(domain.SubscriberCount{ActiveOnly: true}))
	count(&ov.MonthlyNewsletterSignups, subscribers(domain.SubscriberCount{Since: monthStart}))

	g.Go(func() (err error) {
		popular, err = u.r.PopularInstitutions(gctx, popularLimit)
		return err
	})
	g.Go(func() (err error) {
		recent, err = u.r.RecentRequests(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = u.r.RequestsByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		timestamps, err = u.r.RequestTimestamps(gctx, trendStart)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ov.RequestGrowth = Growth(ov.MonthlyRequests, lastMonth)
	if popular == nil {
		popular = []domain.PopularInstitution{}
	}
	return &Dashboard{
		Overview:        ov,
		PopularFintechs: popular,
		RecentRequests:  toRecent(recent),
		Charts: Charts{
			StatusDistribution: distribution(byStatus),
			MonthlyTrends:      MonthlyTrends(timestamps),
			ConversionRate:     ConversionRate(ov.ApprovedRequests, ov.TotalRequests),
		},
	}, nil
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

// Growth is the percent change from prev to cur: 0 when both are zero, 100 when only cur is non-zero.
func Growth(cur, prev int64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return round2(float64(cur-prev) / float64(prev) * 100)
}

// ConversionRate is approved/total as a percentage, 0 for an empty dataset.
func ConversionRate(approved, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(approved) / float64(total) * 100)
}

// MonthlyTrends buckets timestamps by UTC calendar month, ascending. Empty months are absent.
func MonthlyTrends(ts []time.Time) []MonthCount {
	buckets := map[string]int64{}
	for _, t := range ts {
		buckets[t.UTC().Format("2006-01")]++
	}
	out := make([]MonthCount, 0, len(buckets))
	for m, n := range buckets {
		out = append(out, MonthCount{Month: m, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func distribution(rows []domain.StatusCount) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[strings.ToLower(string(r.Status))] = r.Count
	}
	return out
}

func toRecent(rows []onboarding.Request) []RecentRequest {
	out := make([]RecentRequest, 0, len(rows))
	for _, r := range rows {
		rr := RecentRequest{
			ID:           r.ID,
			CompanyName:  r.CompanyName,
			ContactName:  r.ContactName,
			ContactEmail: r.ContactEmail,
			Status:       string(r.Status),
			CreatedAt:    r.CreatedAt,
		}
		if r.Fintech != nil {
			rr.Fintech = &RecentFintech{Name: r.Fintech.Name, Logo: r.Fintech.Logo, Category: r.Fintech.Category}
		}
		out = append(out, rr)
	}
	return out
}
