// Package seed loads the sample catalogue used in development and demos.
// Every step is keyed on a natural key (slug, email) so running it twice changes nothing.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintech-directory/internal/domain/blog"
	"fintech-directory/internal/domain/institution"
	"fintech-directory/internal/domain/jsoncol"
	"fintech-directory/internal/domain/newsletter"
	"fintech-directory/pkg/id"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type InstitutionUpserter interface {
	Upsert(ctx context.Context, in *institution.Institution) error
}

type PostUpserter interface {
	Upsert(ctx context.Context, p *blog.Post) error
}

type Stores struct {
	Institutions InstitutionUpserter
	Posts        PostUpserter
	Subscribers  newsletter.Repository
}

// Result counts what Run touched.
type Result struct {
	Institutions int
	Posts        int
	Subscribers  int
}

func Run(ctx context.Context, s Stores, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var res Result

	for _, in := range Institutions() {
		if err := s.Institutions.Upsert(ctx, in); err != nil {
			return res, fmt.Errorf("seed institution %s: %w", in.Slug, err)
		}
		res.Institutions++
		log.Info("institution upserted", zap.String("slug", in.Slug))
	}

	for _, p := range Posts() {
		if err := s.Posts.Upsert(ctx, p); err != nil {
			return res, fmt.Errorf("seed post %s: %w", p.Slug, err)
		}
		res.Posts++
		log.Info("blog post upserted", zap.String("slug", p.Slug))
	}

	for _, email := range subscriberEmails {
		_, err := s.Subscribers.GetByEmail(ctx, email)
		switch {
		case err == nil:
			continue
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return res, fmt.Errorf("seed subscriber %s: %w", email, err)
		}
		if err := s.Subscribers.Create(ctx, &newsletter.Subscriber{ID: id.NewID32(), Email: email, IsActive: true}); err != nil {
			return res, fmt.Errorf("seed subscriber %s: %w", email, err)
		}
		res.Subscribers++
	}
	log.Info("seed complete",
		zap.Int("institutions", res.Institutions),
		zap.Int("posts", res.Posts),
		zap.Int("new_subscribers", res.Subscribers),
	)
	return res, nil
}

var subscriberEmails = []string{"user1@example.com", "user2@example.com", "user3@example.com"}

type inst struct {
	name, slug, logo, description, website string
	monthlyFee, setupFee, minTurnover       int64
	transactionFees                         string
	countries, currencies, documents        []string
	category                                institution.Category
	risk                                    institution.Risk
	partner, verified, recommended          bool
	rating                                  float64
	reviews                                 int
}

var catalogue = []inst{
	{"Revolut Business", "revolut-business", "🏦", "Multi-currency business accounts with competitive FX for companies trading across borders.",
		"https://business.revolut.com", 25, 0, 50000, "0.5% per transaction",
		[]string{"UK", "EU", "US"}, []string{"USD", "EUR", "GBP"}, []string{"passport", "company_registration", "bank_statement", "proof_of_address"},
		institution.CategoryEMI, institution.RiskMedium, true, true, true, 4.8, 1250},
	{"Wise Business", "wise-business", "💰", "International business account using the mid-market exchange rate and low transfer fees.",
		"https://wise.com/business", 0, 0, 25000, "0.4% per transaction",
		[]string{"UK", "EU", "US", "AU"}, []string{"USD", "EUR", "GBP", "AUD"}, []string{"passport", "company_registration", "bank_statement"},
		institution.CategoryEMI, institution.RiskLow, true, true, true, 4.9, 2100},
	{"Stripe", "stripe", "💳", "Online payment processing and billing infrastructure with global acquiring.",
		"https://stripe.com", 0, 0, 100000, "2.9% + 30¢ per transaction",
		[]string{"Global"}, []string{"USD", "EUR", "GBP", "CAD", "AUD"}, []string{"company_registration", "bank_statement", "proof_of_address"},
		institution.CategoryPSP, institution.RiskMedium, false, true, true, 4.7, 3200},
	{"Adyen", "adyen", "🔄", "Enterprise payment platform covering online, in-store and platform payments.",
		"https://adyen.com", 0, 1000, 1000000, "Custom pricing",
		[]string{"Global"}, []string{"USD", "EUR", "GBP", "JPY", "CNY"}, []string{"company_registration", "bank_statement", "proof_of_address", "business_license"},
		institution.CategoryPSP, institution.RiskHigh, true, true, false, 4.6, 890},
	{"Monzo Business", "monzo-business", "🏧", "UK digital bank account for small and medium businesses.",
		"https://monzo.com/business", 5, 0, 10000, "Free domestic transfers",
		[]string{"UK"}, []string{"GBP"}, []string{"passport", "company_registration", "proof_of_address"},
		institution.CategoryBank, institution.RiskLow, false, true, false, 4.4, 678},
	{"Square", "square", "⬜", "Commerce platform with card acceptance for retail and e-commerce.",
		"https://squareup.com", 0, 0, 75000, "2.9% per transaction",
		[]string{"US", "CA", "AU", "UK"}, []string{"USD", "CAD", "AUD", "GBP"}, []string{"company_registration", "bank_statement"},
		institution.CategoryPSP, institution.RiskMedium, true, true, true, 4.5, 1890},
	{"Payoneer", "payoneer", "🌐", "Cross-border payouts and receiving accounts for freelancers and marketplaces.",
		"https://payoneer.com", 12, 0, 50000, "1.5% per transaction",
		[]string{"Global"}, []string{"USD", "EUR", "GBP", "JPY"}, []string{"passport", "company_registration", "bank_statement"},
		institution.CategoryPSP, institution.RiskMedium, false, true, false, 4.3, 2450},
	{"Coinbase Commerce", "coinbase-commerce", "₿", "Accept Bitcoin, Ethereum and stablecoin payments from customers.",
		"https://commerce.coinbase.com", 0, 0, 100000, "1% per transaction",
		[]string{"US", "EU", "UK"}, []string{"BTC", "ETH", "USDC", "USD"}, []string{"company_registration", "bank_statement", "kyc_documents"},
		institution.CategoryCrypto, institution.RiskHigh, false, true, false, 4.2, 567},
}

// Institutions returns fresh rows for the sample catalogue.
func Institutions() []*institution.Institution {
	out := make([]*institution.Institution, 0, len(catalogue))
	for _, c := range catalogue {
		rating := c.rating
		out = append(out, &institution.Institution{
			ID:                  id.NewID32(),
			Name:                c.name,
			Slug:                c.slug,
			Logo:                c.logo,
			Description:         c.description,
			Website:             c.website,
			MonthlyFee:          money(c.monthlyFee),
			SetupFee:            money(c.setupFee),
			TransactionFees:     c.transactionFees,
			MinTurnover:         money(c.minTurnover),
			Countries:           jsoncol.StringList(c.countries),
			SupportedCurrencies: jsoncol.StringList(c.currencies),
			Category:            c.category,
			AcceptedRisk:        c.risk,
			IsPartner:           c.partner,
			IsVerified:          c.verified,
			IsRecommended:       c.recommended,
			Rating:              &rating,
			ReviewCount:         c.reviews,
			RequiredDocuments:   jsoncol.StringList(c.documents),
			IsActive:            true,
		})
	}
	return out
}

func Posts() []*blog.Post {
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	return []*blog.Post{
		{
			ID:          id.NewID32(),
			Title:       "Complete Guide to EMI Licensing in Europe",
			Slug:        "emi-licensing-guide-europe",
			Excerpt:     "What an Electronic Money Institution licence requires in the European Union.",
			Content:     "# EMI licensing in Europe\n\n## Capital\n- Initial capital of €350,000\n- Own funds that scale with volume\n\n## Process\n1. Prepare the programme of operations\n2. File with the national regulator\n3. Review takes six to twelve months\n",
			Category:    "Licensing",
			Tags:        jsoncol.StringList{"EMI", "Europe", "Licensing", "Fintech"},
			Author:      "EklFounder Team",
			PublishedAt: &jan15,
			IsPublished: true,
			Locale:      blog.LocaleEN,
		},
		{
			ID:          id.NewID32(),
			Title:       "Best Payment Service Providers for E-commerce",
			Slug:        "best-psp-ecommerce-2024",
			Excerpt:     "Comparing payment service providers for online shops in 2024.",
			Content:     "# Payment providers for e-commerce\n\n## Stripe\n- Developer tooling\n- Global coverage\n\n## Adyen\n- Enterprise grade\n- Built-in fraud screening\n",
			Category:    "Comparison",
			Tags:        jsoncol.StringList{"PSP", "E-commerce", "Payments", "Stripe", "Adyen"},
			Author:      "Sarah Johnson",
			PublishedAt: &jan20,
			IsPublished: true,
			Locale:      blog.LocaleEN,
		},
	}
}

func money(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}
