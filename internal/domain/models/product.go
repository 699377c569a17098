package models

// Product is one stock-keeping item as the inventory service reports it.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	LocationID   string `json:"location_id"`
	StockLevel   int    `json:"stock_level"`
	ReorderPoint int    `json:"reorder_point"`
}

// StockBadge classifies a product's stock level for display: "out" when
// empty, "low" when at or below the reorder point, "ok" otherwise.
func (p Product) StockBadge() string {
	switch {
	case p.StockLevel == 0:
		return "out"
	case p.StockLevel <= p.ReorderPoint:
		return "low"
	default:
		return "ok"
	}
}
