// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/kestrelworks/invdash/internal/app/features/errors"
	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
)

type Handler struct {
	API        *imsapi.Client
	Views      *viewcache.Cache
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(api *imsapi.Client, views *viewcache.Cache, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:        api,
		Views:      views,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	st := h.SessionMgr.State(r)
	if st.Nav != uistate.NavDashboard {
		st = st.Apply(uistate.SelectNav{Section: uistate.NavDashboard})
		if err := h.SessionMgr.SaveState(w, r, st); err != nil {
			h.ErrLog.LogServerError(w, r, "save session", err, "A server error occurred.", "/dashboard")
			return
		}
	}

	note := h.refresh(r.Context(), u, st)
	if note == nil {
		note = flash.Pop(w, r, h.SessionMgr, h.Log)
	}

	data := h.buildViewData(r, st, note)
	templates.Render(w, r, "dashboard", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /dashboard/filters                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleFilterToggle flips one filter option and refetches. HTMX requests
// get the dashboard content fragment back; plain form posts redirect to a
// full page load.
func (h *Handler) HandleFilterToggle(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/dashboard")
		return
	}

	dim := uistate.Dimension(r.FormValue("dimension"))
	option := r.FormValue("option")
	if !uistate.ValidDimension(dim) || option == "" {
		h.ErrLog.LogBadRequest(w, r, "bad filter toggle", nil, "Unknown filter option.", "/dashboard")
		return
	}

	st := h.SessionMgr.State(r)
	st = st.Apply(uistate.ToggleFilter{Dimension: dim, Option: option})
	if err := h.SessionMgr.SaveState(w, r, st); err != nil {
		h.ErrLog.LogServerError(w, r, "save session", err, "A server error occurred.", "/dashboard")
		return
	}

	h.Log.Debug("filter toggled",
		zap.String("dimension", string(dim)),
		zap.String("option", option),
		zap.Uint64("generation", st.Generation))

	note := h.refresh(r.Context(), u, st)

	if r.Header.Get("HX-Request") == "true" {
		data := h.buildViewData(r, st, note)
		templates.Render(w, r, "dashboard_content", data)
		return
	}

	// A plain form post can't carry the note inline across the redirect,
	// so it travels as a session flash and is popped on the next load.
	if note != nil {
		flash.Push(w, r, h.SessionMgr, h.Log, note.Kind, note.Message)
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
