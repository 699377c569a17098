package home

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
)

// Handler routes the bare root path. There is no landing page: the app has
// exactly two top-level views, login and dashboard.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
