package http

import (
	"errors"
	"strings"
	"testing"

	uinst "fintech-directory/internal/usecase/institution"
	uonb "fintech-directory/internal/usecase/onboarding"

	"github.com/shopspring/decimal"
)

func TestHex32Validation(t *testing.T) {
	type P struct {
		FintechID string `json:"fintechId" validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{FintechID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",
		strings.Repeat("A", 32),
		"deadbeef",
		strings.Repeat("g", 32),
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",
	} {
		err := cv.Validate(P{FintechID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "fintechId", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestSlugValidation(t *testing.T) {
	type P struct {
		Slug string `json:"slug" validate:"slug"`
	}
	cv := NewValidator()
	for _, s := range []string{"revolut", "wise-business", "n26"} {
		if err := cv.Validate(P{Slug: s}); err != nil {
			t.Fatalf("%q should be valid: %v", s, err)
		}
	}
	for _, s := range []string{"Revolut", "two--dashes", "-lead", "trail-", "with space"} {
		err := cv.Validate(P{Slug: s})
		if err == nil || !containsFieldMsg(ToFieldErrors(err), "slug", "lowercase") {
			t.Fatalf("%q should be rejected, got %v", s, err)
		}
	}
}

func TestDec2Validation(t *testing.T) {
	type P struct {
		Rate float64 `json:"rate" validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []float64{1.29, 2.00, 0.9, 1.2} {
		if err := cv.Validate(P{Rate: v}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []float64{1.234, 2.9999} {
		err := cv.Validate(P{Rate: v})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "rate", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestDecimalFieldsValidateAsNumbers(t *testing.T) {
	cv := NewValidator()
	neg := decimal.RequireFromString("-1")
	frac := decimal.RequireFromString("9.999")

	in := uinst.CreateInput{
		Name: "Acme", Slug: "acme", Description: "d", Countries: []string{"FR"},
		Category: "EMI", AcceptedRisk: "LOW",
		MonthlyFee: &neg, SetupFee: &frac,
	}
	fe := ToFieldErrors(cv.Validate(in))
	if !containsFieldMsg(fe, "monthlyFee", "greater than or equal to 0") {
		t.Fatalf("monthlyFee gte not enforced: %+v", fe)
	}
	if !containsFieldMsg(fe, "setupFee", "2 decimal places") {
		t.Fatalf("setupFee dec2 not enforced: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	cv := NewValidator()
	rating := 6.0
	err := cv.Validate(uinst.CreateInput{
		Slug:         "ok",
		Website:      "not a url",
		Category:     "BANKISH",
		AcceptedRisk: "LOW",
		Rating:       &rating,
		ReviewCount:  -1,
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	checks := []struct{ field, msg string }{
		{"name", "is required"},
		{"description", "is required"},
		{"countries", "is required"},
		{"website", "valid URL"},
		{"category", "one of: EMI, BANK, PSP, CRYPTO, OTHER"},
		{"rating", "less than or equal to 5"},
		{"reviewCount", "greater than or equal to 0"},
	}
	for _, c := range checks {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %q for %s: %+v", c.msg, c.field, fe)
		}
	}
}

func TestOnboardingInputMessages(t *testing.T) {
	cv := NewValidator()
	turnover := decimal.RequireFromString("-5")
	err := cv.Validate(uonb.CreateInput{
		FintechID:         strings.Repeat("a", 32),
		ContactEmail:      "nope",
		EstimatedTurnover: &turnover,
	})
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "contactEmail", "valid email") {
		t.Fatalf("email message missing: %+v", fe)
	}
	if !containsFieldMsg(fe, "estimatedTurnover", "greater than or equal to 0") {
		t.Fatalf("turnover message missing: %+v", fe)
	}
	if !containsFieldMsg(fe, "companyName", "is required") {
		t.Fatalf("companyName message missing: %+v", fe)
	}
}

func TestSizeMessages(t *testing.T) {
	type P struct {
		Message string   `json:"message" validate:"min=10"`
		Tags    []string `json:"tags" validate:"max=1"`
	}
	fe := ToFieldErrors(NewValidator().Validate(P{Message: "short", Tags: []string{"a", "b"}}))
	if !containsFieldMsg(fe, "message", "at least 10 characters") {
		t.Fatalf("min message missing: %+v", fe)
	}
	if !containsFieldMsg(fe, "tags", "at most 1 items") {
		t.Fatalf("max message missing: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
