// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	uierrors "github.com/kestrelworks/invdash/internal/app/features/errors"
	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/timeouts"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
	"github.com/kestrelworks/invdash/internal/app/system/viewdata"
)

type Handler struct {
	API        *imsapi.Client
	Views      *viewcache.Cache
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
}

func NewHandler(api *imsapi.Client, views *viewcache.Cache, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:        api,
		Views:      views,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
	}
}

// Messages the inventory service never gets to phrase for us.
const (
	genericFailure = "Login failed."
)

// sanitize strips markup from server-supplied message text before it is
// shown on the form.
var sanitize = bluemonday.StrictPolicy()

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// Already signed in: straight to the dashboard.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.API.Login(ctx, email, password)
	if err != nil {
		// Transport failure: the service never saw the credentials.
		h.Log.Warn("login: backend unreachable", zap.Error(err))
		h.renderFormWithError(w, r,
			"Cannot reach the inventory service at "+h.API.BaseURL()+". Please try again.",
			email)
		return
	}

	if !res.Success {
		msg := sanitize.Sanitize(res.Message)
		if msg == "" {
			msg = genericFailure
		}
		h.Log.Info("login rejected", zap.String("email", email))
		h.renderFormWithError(w, r, msg, email)
		return
	}

	// Fresh state machine: SignIn discards anything left from a previous
	// session, so no filters leak across sign-ins. The session id is
	// rotated and the old id's cached views dropped for the same reason:
	// a snapshot cached at a higher generation under the previous
	// identity would otherwise outrank every fetch the new identity
	// makes from generation 1.
	st := uistate.State{}.Apply(uistate.SignIn{Session: uistate.Session{
		UserID:      res.UserID,
		Role:        res.Role,
		ProfileName: res.ProfileName,
	}})

	oldSID, err := h.SessionMgr.StartSession(w, r, st)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "save session", err, "A server error occurred.", "/login")
		return
	}
	if oldSID != "" {
		h.Views.Drop(oldSID)
	}

	h.Log.Info("login succeeded",
		zap.String("user_id", res.UserID),
		zap.String("role", res.Role))

	dest := query.Get(r, "return")
	if dest == "" {
		dest = r.FormValue("return")
	}
	if !safeReturnURL(dest) {
		dest = "/dashboard"
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Login", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: query.Get(r, "return"),
	})
}

// safeReturnURL accepts only same-site absolute paths.
func safeReturnURL(dest string) bool {
	return strings.HasPrefix(dest, "/") && !strings.HasPrefix(dest, "//")
}
