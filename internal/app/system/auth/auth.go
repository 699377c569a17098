package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/system/uistate"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	stateKey = "ui_state" // encoded uistate.State
	sidKey   = "sid"      // opaque per-session id for server-side view caching
)

// SessionUser is the signed-in identity injected into r.Context() by
// LoadSessionUser.
type SessionUser struct {
	ID   string // user id assigned by the inventory service
	Name string // profile display name
	Role string
	SID  string // session id for view-cache lookups
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user & "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// WithTestUser injects a SessionUser into the request context, bypassing
// session middleware. Test use only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the signed cookie session: the UI state machine's
// persisted State plus a server-side session id.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds a cookie-backed session manager. The session
// key signs cookies and must be strong in production. In production
// (secure=true) cookies are Secure with SameSite=Lax.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Store exposes the underlying cookie store (logout needs its options to
// build a matching deletion cookie).
func (sm *SessionManager) Store() *sessions.CookieStore {
	return sm.store
}

// GetSession returns the request's session, creating a fresh one if the
// cookie is absent or fails to decode.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// State decodes the persisted UI state from the session. A missing or
// corrupt value decodes to the Unauthenticated zero state.
func (sm *SessionManager) State(r *http.Request) uistate.State {
	sess, err := sm.GetSession(r)
	if err != nil {
		return uistate.State{}
	}
	raw, _ := sess.Values[stateKey].(string)
	st, err := uistate.Decode(raw)
	if err != nil {
		sm.log.Warn("session state decode failed", zap.Error(err))
		return uistate.State{}
	}
	return st
}

// SaveState persists the UI state into the session cookie.
func (sm *SessionManager) SaveState(w http.ResponseWriter, r *http.Request, st uistate.State) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		// Undecodable cookie: GetSession already handed us a fresh session.
		sm.log.Warn("session decode failed; replacing", zap.Error(err))
	}
	raw, err := uistate.Encode(st)
	if err != nil {
		return err
	}
	sess.Values[stateKey] = raw
	if _, ok := sess.Values[sidKey].(string); !ok {
		sess.Values[sidKey] = uuid.NewString()
	}
	return sess.Save(r, w)
}

// StartSession persists a freshly signed-in state and rotates the
// session id, so nothing cached under the previous id can ever be
// served to the new identity. It returns the session id that was
// replaced, or "" when the request carried none.
func (sm *SessionManager) StartSession(w http.ResponseWriter, r *http.Request, st uistate.State) (string, error) {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed; replacing", zap.Error(err))
	}
	raw, err := uistate.Encode(st)
	if err != nil {
		return "", err
	}
	oldSID, _ := sess.Values[sidKey].(string)
	sess.Values[stateKey] = raw
	sess.Values[sidKey] = uuid.NewString()
	return oldSID, sess.Save(r, w)
}

// SID returns the opaque session id, or "" when no session exists yet.
func (sm *SessionManager) SID(r *http.Request) string {
	sess, err := sm.GetSession(r)
	if err != nil {
		return ""
	}
	sid, _ := sess.Values[sidKey].(string)
	return sid
}

// SignOut deletes the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Warn("session decode failed during sign-out", zap.Error(err))
	}
	if opts := sm.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1 // delete immediately
	return sess.Save(r, w)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSessionUser injects the user into context if they are signed in.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := sm.State(r)
		if st.SignedIn() {
			r = withUser(r, &SessionUser{
				ID:   st.Session.UserID,
				Name: st.Session.ProfileName,
				Role: st.Session.Role,
				SID:  sm.SID(r),
			})
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures there is a user in context (set by LoadSessionUser).
// If not signed in:
//   - HTMX: sends HX-Redirect to /login?return=...
//   - HTML: 303 redirect to /login?return=...
//   - API:  401 Unauthorized with a plain error body.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}

		ret := url.QueryEscape(currentURI(r))

		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", "/login?return="+ret)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if wantsHTML(r) {
			http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
			return
		}
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
}

// RequireRole ensures the context user has one of the allowed roles.
// Role comparison is case-insensitive.
func (sm *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)

			if !ok {
				ret := url.QueryEscape(currentURI(r))
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/login?return="+ret)
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/login?return="+ret, http.StatusSeeOther)
					return
				}
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if _, has := set[strings.ToLower(u.Role)]; !has {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/forbidden")
					w.WriteHeader(http.StatusForbidden)
					return
				}
				if wantsHTML(r) {
					http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
					return
				}
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func wantsHTML(r *http.Request) bool {
	// Very light heuristic: treat it as HTML if it's HTMX or Accepts text/html.
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

func currentURI(r *http.Request) string {
	// Preserve path + query as a return param.
	u := *r.URL
	return u.RequestURI()
}
