// internal/app/features/products/handler.go
package products

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	uierrors "github.com/kestrelworks/invdash/internal/app/features/errors"
	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
	"github.com/kestrelworks/invdash/internal/app/system/timeouts"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/app/system/viewdata"
)

type Handler struct {
	API        *imsapi.Client
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

func NewHandler(api *imsapi.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		API:        api,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

type productRowVM struct {
	ID           string
	Name         string
	Category     string
	LocationID   string
	StockLevel   int
	ReorderPoint int
	Badge        string
}

type productsData struct {
	viewdata.BaseVM
	Products []productRowVM
	Count    int
}

// ServeList handles GET /products.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	st := h.SessionMgr.State(r)
	if st.Nav != uistate.NavProducts {
		st = st.Apply(uistate.SelectNav{Section: uistate.NavProducts})
		if err := h.SessionMgr.SaveState(w, r, st); err != nil {
			h.ErrLog.LogServerError(w, r, "save session", err, "A server error occurred.", "/products")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data := productsData{
		BaseVM: viewdata.NewBaseVM(r, "Products", "/dashboard"),
	}

	prods, count, err := h.API.Products(ctx, u.ID)
	if err != nil {
		h.Log.Warn("products fetch failed", zap.Error(err))
		msg := "Could not load products. Please try again."
		if imsapi.IsTransport(err) {
			msg = "Cannot reach the inventory service at " + h.API.BaseURL() + "."
		}
		data.Notification = &flash.Note{Message: msg, Kind: flash.KindError}
		templates.Render(w, r, "products", data)
		return
	}

	data.Count = count
	data.Products = make([]productRowVM, 0, len(prods))
	for _, p := range prods {
		data.Products = append(data.Products, productRowVM{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			LocationID:   p.LocationID,
			StockLevel:   p.StockLevel,
			ReorderPoint: p.ReorderPoint,
			Badge:        p.StockBadge(),
		})
	}
	data.Notification = flash.Pop(w, r, h.SessionMgr, h.Log)

	templates.Render(w, r, "products", data)
}
