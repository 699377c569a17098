package models

import "sort"

// Location is one warehouse location known to the inventory service.
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Manager string `json:"manager,omitempty"`
}

// LocationStock is one bar of the stock-by-location chart.
type LocationStock struct {
	Location string `json:"location"`
	Stock    int    `json:"stock"`
}

// CategoryShare is one slice of the category breakdown pie chart.
type CategoryShare struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

// Summary is the server-aggregated dashboard snapshot. It is replaced
// wholesale on every refresh and is read-only to the UI.
type Summary struct {
	TotalProductsInStock int                 `json:"total_products_in_stock"`
	LowStockItems        int                 `json:"low_stock_items"`
	OutOfStockItems      int                 `json:"out_of_stock_items"`
	PendingReceipts      int                 `json:"pending_receipts"`
	PendingDeliveries    int                 `json:"pending_deliveries"`
	TransfersScheduled   int                 `json:"transfers_scheduled"`
	AdjustmentsPending   int                 `json:"adjustments_pending"`
	Locations            map[string]Location `json:"locations"`
	LocationChartData    []LocationStock     `json:"location_chart_data"`
	CategoryChartData    []CategoryShare     `json:"category_chart_data"`
}

// LocationIDs returns the location keys in stable sorted order, for building
// the dynamic location filter group.
func (s Summary) LocationIDs() []string {
	ids := make([]string, 0, len(s.Locations))
	for id := range s.Locations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
