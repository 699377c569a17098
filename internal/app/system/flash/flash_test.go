package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
)

func newSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

// pushThenRequest pushes a note and returns a follow-up request carrying
// the resulting session cookie, simulating the post-redirect GET.
func pushThenRequest(t *testing.T, sm *auth.SessionManager, kind, message string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("POST", "/dashboard/filters", nil)
	rec := httptest.NewRecorder()
	flash.Push(rec, req, sm, zap.NewNop(), kind, message)

	next := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestPushThenPop(t *testing.T) {
	sm := newSessionManager(t)
	req := pushThenRequest(t, sm, flash.KindError, "Could not load dashboard data.")

	rec := httptest.NewRecorder()
	note := flash.Pop(rec, req, sm, zap.NewNop())
	if note == nil {
		t.Fatal("expected a pending notification")
	}
	if note.Kind != flash.KindError {
		t.Errorf("Kind: got %q, want %q", note.Kind, flash.KindError)
	}
	if note.Message != "Could not load dashboard data." {
		t.Errorf("Message: got %q", note.Message)
	}
}

func TestPopClearsNotification(t *testing.T) {
	sm := newSessionManager(t)
	req := pushThenRequest(t, sm, flash.KindInfo, "first")

	rec := httptest.NewRecorder()
	if flash.Pop(rec, req, sm, zap.NewNop()) == nil {
		t.Fatal("expected a notification on first pop")
	}

	// Replay the cleared session; nothing should be pending.
	again := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		again.AddCookie(c)
	}
	if flash.Pop(httptest.NewRecorder(), again, sm, zap.NewNop()) != nil {
		t.Error("popped notification should not render twice")
	}
}

func TestPushReplacesPending(t *testing.T) {
	sm := newSessionManager(t)

	req := httptest.NewRequest("POST", "/dashboard/filters", nil)
	rec := httptest.NewRecorder()
	flash.Push(rec, req, sm, zap.NewNop(), flash.KindError, "older")

	// Second push on the same session replaces the first.
	mid := httptest.NewRequest("POST", "/dashboard/filters", nil)
	for _, c := range rec.Result().Cookies() {
		mid.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	flash.Push(rec2, mid, sm, zap.NewNop(), flash.KindSuccess, "newer")

	final := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec2.Result().Cookies() {
		final.AddCookie(c)
	}
	note := flash.Pop(httptest.NewRecorder(), final, sm, zap.NewNop())
	if note == nil {
		t.Fatal("expected a notification")
	}
	if note.Message != "newer" || note.Kind != flash.KindSuccess {
		t.Errorf("expected the newer notification, got %+v", note)
	}
}

func TestPushSanitizesMessage(t *testing.T) {
	sm := newSessionManager(t)
	req := pushThenRequest(t, sm, flash.KindError, `<script>alert(1)</script>Login failed`)

	note := flash.Pop(httptest.NewRecorder(), req, sm, zap.NewNop())
	if note == nil {
		t.Fatal("expected a notification")
	}
	if note.Message != "Login failed" {
		t.Errorf("markup should be stripped, got %q", note.Message)
	}
}

func TestPopEmptySession(t *testing.T) {
	sm := newSessionManager(t)
	req := httptest.NewRequest("GET", "/dashboard", nil)
	if flash.Pop(httptest.NewRecorder(), req, sm, zap.NewNop()) != nil {
		t.Error("expected nil for a session with no pending notification")
	}
}
