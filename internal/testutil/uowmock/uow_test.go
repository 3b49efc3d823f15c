package uowmock

import (
	"context"
	"errors"
	"testing"

	"fintech-directory/internal/domain/uow"
	"fintech-directory/internal/testutil/institutionmock"
	"fintech-directory/internal/testutil/onboardingmock"
)

func TestUoW_Unimplemented(t *testing.T) {
	err := New().WithinTx(context.Background(), func(uow.Repos) error { return nil })
	if !errors.Is(err, errUnimplemented) {
		t.Fatalf("want errUnimplemented, got %v", err)
	}
}

func TestUoW_Passthrough(t *testing.T) {
	repos := uow.Repos{Institutions: &institutionmock.Repo{}, Onboarding: &onboardingmock.Repo{}}
	m := Passthrough(repos)

	var got uow.Repos
	wantErr := errors.New("boom")
	err := m.WithinTx(context.Background(), func(r uow.Repos) error {
		got = r
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if got.Institutions != repos.Institutions || got.Onboarding != repos.Onboarding {
		t.Fatal("repos not passed through")
	}

	m.Reset()
	if m.WithinTxFn != nil {
		t.Fatal("Reset did not clear WithinTxFn")
	}
}
