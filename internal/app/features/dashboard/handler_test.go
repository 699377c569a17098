package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/features/dashboard"
	uierrors "github.com/kestrelworks/invdash/internal/app/features/errors"
	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
	"github.com/kestrelworks/invdash/internal/testutil"
)

type fixture struct {
	handler *dashboard.Handler
	fake    *testutil.FakeBackend
	views   *viewcache.Cache
	sm      *auth.SessionManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	errLog := uierrors.NewErrorLogger(logger)

	fake := testutil.NewFakeBackend()
	t.Cleanup(fake.Close)

	sm, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	views := viewcache.New()
	return &fixture{
		handler: dashboard.NewHandler(fake.Client(), views, sm, errLog, logger),
		fake:    fake,
		views:   views,
		sm:      sm,
	}
}

// signedInRequest builds a request that carries both the context user and
// a session cookie holding the given state, the way LoadSessionUser
// leaves requests in production.
func (f *fixture) signedInRequest(t *testing.T, method, target string, user testutil.TestUser, st uistate.State, form url.Values) *http.Request {
	t.Helper()
	seed := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	if err := f.sm.SaveState(rec, seed, st); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return testutil.WithUser(req, user)
}

func signedInState(user testutil.TestUser) uistate.State {
	return uistate.State{}.Apply(uistate.SignIn{Session: uistate.Session{
		UserID:      user.ID,
		Role:        user.Role,
		ProfileName: user.Name,
	}})
}

func TestServeDashboard_Anonymous(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeDashboard(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/login" {
		t.Errorf("Location: got %q, want %q", location, "/login")
	}
}

func TestServeDashboard_RefreshesAndCaches(t *testing.T) {
	f := newFixture(t)
	user := testutil.StockMasterUser()
	req := f.signedInRequest(t, "GET", "/dashboard", user, signedInState(user), nil)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }() // template render without booted engine
		f.handler.ServeDashboard(rec, req)
	}()

	if f.fake.SummaryCalls != 1 {
		t.Errorf("summary calls: got %d, want 1", f.fake.SummaryCalls)
	}
	if f.fake.FilterCalls != 1 {
		t.Errorf("filter calls: got %d, want 1", f.fake.FilterCalls)
	}
	if f.fake.LastUserID != user.ID {
		t.Errorf("User-Id header: got %q, want %q", f.fake.LastUserID, user.ID)
	}

	snap, ok := f.views.Latest(user.SID)
	if !ok {
		t.Fatal("expected a cached snapshot after refresh")
	}
	if snap.Summary.TotalProductsInStock != 1250 {
		t.Errorf("TotalProductsInStock: got %d", snap.Summary.TotalProductsInStock)
	}
	if snap.MatchCount != 2 {
		t.Errorf("MatchCount: got %d, want 2", snap.MatchCount)
	}
}

func TestHandleFilterToggle_UpdatesStateAndBody(t *testing.T) {
	f := newFixture(t)
	user := testutil.StockMasterUser()
	st := signedInState(user)

	form := url.Values{
		"dimension": {"status"},
		"option":    {"Done"},
	}
	req := f.signedInRequest(t, "POST", "/dashboard/filters", user, st, form)

	rec := httptest.NewRecorder()
	f.handler.HandleFilterToggle(rec, req)

	// Plain form post: redirect back to the full page.
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/dashboard" {
		t.Errorf("Location: got %q, want %q", location, "/dashboard")
	}

	// The toggled option must reach the backend in the filter body.
	statuses, ok := f.fake.LastFilterBody["status"].([]any)
	if !ok || len(statuses) != 1 || statuses[0] != "Done" {
		t.Errorf("filter body status: got %v", f.fake.LastFilterBody["status"])
	}

	// The new state must be persisted with an advanced generation.
	replay := httptest.NewRequest("GET", "/dashboard", nil)
	for _, c := range rec.Result().Cookies() {
		replay.AddCookie(c)
	}
	saved := f.sm.State(replay)
	if !saved.Filters.Has(uistate.DimStatus, "Done") {
		t.Error("toggled filter not persisted in the session")
	}
	if saved.Generation != st.Generation+1 {
		t.Errorf("Generation: got %d, want %d", saved.Generation, st.Generation+1)
	}
}

func TestHandleFilterToggle_UnknownDimension(t *testing.T) {
	f := newFixture(t)
	user := testutil.StockMasterUser()

	form := url.Values{
		"dimension": {"warehouse_temperature"},
		"option":    {"hot"},
	}
	req := f.signedInRequest(t, "POST", "/dashboard/filters", user, signedInState(user), form)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		f.handler.HandleFilterToggle(rec, req)
	}()

	if f.fake.FilterCalls != 0 {
		t.Error("invalid dimension should not trigger a backend fetch")
	}
}

func TestHandleFilterToggle_BackendDownFlashesAcrossRedirect(t *testing.T) {
	f := newFixture(t)
	user := testutil.StockMasterUser()
	f.fake.Close()

	form := url.Values{
		"dimension": {"status"},
		"option":    {"Done"},
	}
	req := f.signedInRequest(t, "POST", "/dashboard/filters", user, signedInState(user), form)

	rec := httptest.NewRecorder()
	f.handler.HandleFilterToggle(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	// The failure note must survive the redirect as a session flash. The
	// session is saved twice (state, then flash); a browser keeps the
	// last cookie, so the replay does too.
	var sessCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			sessCookie = c
		}
	}
	if sessCookie == nil {
		t.Fatal("expected a session cookie")
	}
	replay := httptest.NewRequest("GET", "/dashboard", nil)
	replay.AddCookie(sessCookie)

	note := flash.Pop(httptest.NewRecorder(), replay, f.sm, zap.NewNop())
	if note == nil {
		t.Fatal("expected a flashed notification after the redirect")
	}
	if note.Kind != flash.KindError {
		t.Errorf("Kind: got %q, want %q", note.Kind, flash.KindError)
	}
	if !strings.Contains(note.Message, "Cannot reach") {
		t.Errorf("Message: got %q", note.Message)
	}
}

func TestRefresh_StaleResultDiscarded(t *testing.T) {
	f := newFixture(t)
	user := testutil.StockMasterUser()

	// A newer toggle already stored generation 7.
	f.views.StoreIfCurrent(user.SID, viewcache.Snapshot{Generation: 7, MatchCount: 99})

	// A dashboard load carrying older state (generation 2) completes late.
	st := signedInState(user) // generation 1
	st = st.Apply(uistate.SelectNav{Section: uistate.NavDashboard})
	req := f.signedInRequest(t, "GET", "/dashboard", user, st, nil)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		f.handler.ServeDashboard(rec, req)
	}()

	snap, ok := f.views.Latest(user.SID)
	if !ok {
		t.Fatal("expected a snapshot")
	}
	if snap.Generation != 7 || snap.MatchCount != 99 {
		t.Errorf("stale refresh overwrote newer snapshot: %+v", snap)
	}
}

func TestServeDashboard_BackendDownKeepsLastSnapshot(t *testing.T) {
	f := newFixture(t)
	user := testutil.StockMasterUser()

	f.views.StoreIfCurrent(user.SID, viewcache.Snapshot{Generation: 1, MatchCount: 5})
	f.fake.Close()

	st := signedInState(user)
	req := f.signedInRequest(t, "GET", "/dashboard", user, st, nil)

	rec := httptest.NewRecorder()
	func() {
		defer func() { recover() }()
		f.handler.ServeDashboard(rec, req)
	}()

	snap, ok := f.views.Latest(user.SID)
	if !ok {
		t.Fatal("expected the previous snapshot to survive a failed refresh")
	}
	if snap.MatchCount != 5 {
		t.Errorf("previous snapshot was replaced: %+v", snap)
	}
	if f.views.Loading(user.SID) {
		t.Error("loading flag should be cleared after a failed refresh")
	}
}
