// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Views      *viewcache.Cache
}

func NewHandler(sessionMgr *auth.SessionManager, views *viewcache.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Views:      views,
	}
}

// ServeLogout handles GET /logout. It drops the cached view data before
// deleting the cookie so nothing carries over into the next sign-in.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok && u.SID != "" {
		h.Views.Drop(u.SID)
	}

	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	// HTMX handling: use HX-Redirect to force a client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
