// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/domain/models"
)

// Routes wires the dashboard feature under whatever mount point the
// top-level router chooses (e.g., "/dashboard").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		// Only roles the inventory service issues may reach app pages;
		// a session carrying anything else is rejected.
		pr.Use(sm.RequireRole(models.RoleStockMaster, models.RoleWarehouseStaff))
		pr.Get("/", h.ServeDashboard)
		pr.Post("/filters", h.HandleFilterToggle)
	})

	return r
}
