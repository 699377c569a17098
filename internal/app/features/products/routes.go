// internal/app/features/products/routes.go
package products

import (
	"github.com/go-chi/chi/v5"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/domain/models"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleStockMaster, models.RoleWarehouseStaff))
		pr.Get("/", h.ServeList)
	})

	return r
}
