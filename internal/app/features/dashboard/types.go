// internal/app/features/dashboard/types.go
package dashboard

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/kestrelworks/invdash/internal/app/system/auth"
	"github.com/kestrelworks/invdash/internal/app/system/flash"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
	"github.com/kestrelworks/invdash/internal/app/system/viewdata"
	"github.com/kestrelworks/invdash/internal/domain/models"
)

// chartPalette is the fixed color cycle for the category pie; slices are
// colored by index modulo its length.
var chartPalette = []string{
	"#6366f1", "#22c55e", "#f59e0b", "#ef4444",
	"#06b6d4", "#a855f7", "#84cc16", "#f97316",
}

type kpiVM struct {
	Label string
	Value int
}

type optionVM struct {
	Label    string
	Value    string
	Selected bool
}

type filterGroupVM struct {
	Label     string
	Dimension string
	Options   []optionVM
}

type docRowVM struct {
	ID           string
	Type         string
	Route        string
	ProductCount int
	Status       string
	StatusColor  string
	Created      string
}

type dashboardData struct {
	viewdata.BaseVM

	KPIs         []kpiVM
	FilterGroups []filterGroupVM

	LocationChartJSON template.JS
	CategoryChartJSON template.JS
	PaletteJSON       template.JS

	Documents     []docRowVM
	MatchCount    int
	ActiveFilters int

	HasData bool // false until the first successful fetch
	Loading bool // a refresh is in flight
}

// buildViewData assembles the full dashboard view model from the latest
// cached snapshot. With no snapshot yet (first paint or total fetch
// failure) the KPIs default to zero and the table shows its empty state.
func (h *Handler) buildViewData(r *http.Request, st uistate.State, note *flash.Note) dashboardData {
	data := dashboardData{
		BaseVM:        viewdata.NewBaseVM(r, "Dashboard", "/dashboard"),
		ActiveFilters: st.Filters.Count(),
	}
	data.Notification = note

	var snap viewcache.Snapshot
	if u, ok := auth.CurrentUser(r); ok {
		if latest, ok := h.Views.Latest(u.SID); ok {
			snap = latest
			data.HasData = true
		}
		data.Loading = h.Views.Loading(u.SID)
	}

	s := snap.Summary
	data.KPIs = []kpiVM{
		{Label: "Total Products in Stock", Value: s.TotalProductsInStock},
		{Label: "Low Stock Items", Value: s.LowStockItems},
		{Label: "Out of Stock Items", Value: s.OutOfStockItems},
		{Label: "Pending Receipts", Value: s.PendingReceipts},
		{Label: "Pending Deliveries", Value: s.PendingDeliveries},
		{Label: "Transfers Scheduled", Value: s.TransfersScheduled},
		{Label: "Adjustments Pending", Value: s.AdjustmentsPending},
	}

	data.FilterGroups = buildFilterGroups(st.Filters, s)

	data.LocationChartJSON = marshalJS(s.LocationChartData)
	data.CategoryChartJSON = marshalJS(s.CategoryChartData)
	data.PaletteJSON = marshalJS(chartPalette)

	data.Documents = make([]docRowVM, 0, len(snap.Documents))
	for _, d := range snap.Documents {
		data.Documents = append(data.Documents, docRowVM{
			ID:           d.ID,
			Type:         d.Type,
			Route:        d.Route(),
			ProductCount: d.ProductCount(),
			Status:       d.Status,
			StatusColor:  models.StatusColor(d.Status),
			Created:      formatCreated(d.CreatedAt.Time),
		})
	}
	data.MatchCount = snap.MatchCount

	return data
}

// buildFilterGroups renders the three static option lists plus the dynamic
// location group keyed by the summary's location map.
func buildFilterGroups(f uistate.FilterState, s models.Summary) []filterGroupVM {
	groups := []filterGroupVM{
		staticGroup("Document Type", uistate.DimDocumentType, models.DocumentTypes, f),
		staticGroup("Status", uistate.DimStatus, models.DocumentStatuses, f),
	}

	locs := filterGroupVM{Label: "Location", Dimension: string(uistate.DimLocation)}
	for _, id := range s.LocationIDs() {
		label := s.Locations[id].Name
		if label == "" {
			label = id
		}
		locs.Options = append(locs.Options, optionVM{
			Label:    label,
			Value:    id,
			Selected: f.Has(uistate.DimLocation, id),
		})
	}
	groups = append(groups, locs)

	groups = append(groups, staticGroup("Category", uistate.DimCategory, models.ProductCategories, f))
	return groups
}

func staticGroup(label string, dim uistate.Dimension, options []string, f uistate.FilterState) filterGroupVM {
	g := filterGroupVM{Label: label, Dimension: string(dim)}
	for _, o := range options {
		g.Options = append(g.Options, optionVM{
			Label:    o,
			Value:    o,
			Selected: f.Has(dim, o),
		})
	}
	return g
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("Jan 2, 2006 15:04")
}

func marshalJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(b)
}
