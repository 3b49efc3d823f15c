package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintech-directory/internal/infrastructure/storage"

	"github.com/labstack/echo/v4"
)

func TestMountUploads_ServesWithoutSniffing(t *testing.T) {
	files := storage.NewLocal(t.TempDir())
	if _, err := files.Save(context.Background(), "kyc", "1_abc.pdf", strings.NewReader("%PDF-1.4 test")); err != nil {
		t.Fatalf("save: %v", err)
	}
	e := echo.New()
	mountUploads(e, files)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/kyc/1_abc.pdf", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "%PDF-1.4 test" {
		t.Fatalf("status = %d body=%q", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("Content-Security-Policy"); !strings.Contains(got, "sandbox") {
		t.Fatalf("Content-Security-Policy = %q", got)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/../go.mod", nil))
	if rec.Code == http.StatusOK {
		t.Fatal("path outside the upload root was served")
	}
}
