package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/features/home"
	"github.com/kestrelworks/invdash/internal/testutil"
)

func TestServeRoot_SignedIn(t *testing.T) {
	handler := home.NewHandler(zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/", testutil.StockMasterUser())
	rec := httptest.NewRecorder()
	handler.ServeRoot(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/dashboard" {
		t.Errorf("Location: got %q, want %q", location, "/dashboard")
	}
}

func TestServeRoot_Anonymous(t *testing.T) {
	handler := home.NewHandler(zap.NewNop())

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeRoot(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/login" {
		t.Errorf("Location: got %q, want %q", location, "/login")
	}
}
