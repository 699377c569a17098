// internal/domain/models/user.go
package models

// DefaultSiteName is the site title used when none is configured.
const DefaultSiteName = "Inventory Dashboard"

// Roles the inventory service assigns at login. The service owns the user
// records; this side only carries the identity it was handed.
const (
	RoleStockMaster    = "StockMaster"
	RoleWarehouseStaff = "WarehouseStaff"
)
