package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/domain/models"
)

// FakeBackend is an in-process stand-in for the inventory service. It
// serves the same endpoints with canned data so handler tests can run
// without a real service. Fields can be adjusted before requests are made;
// the zero behaviors match a healthy service with SampleSummary data.
type FakeBackend struct {
	Server *httptest.Server

	mu sync.Mutex

	// Login behavior
	AcceptEmail    string // credentials that succeed (default "mitchell@example.com")
	AcceptPassword string // default "password"
	LoginUserID    string
	LoginRole      string
	LoginName      string

	// Canned responses
	Summary   models.Summary
	Documents []models.Document
	DocCount  int
	Products  []models.Product

	// Request capture
	LastUserID     string         // User-Id header of the most recent authenticated call
	LastFilterBody map[string]any // decoded body of the most recent /documents/filter call
	FilterCalls    int
	SummaryCalls   int
}

// NewFakeBackend starts a fake inventory service. Callers must Close it.
func NewFakeBackend() *FakeBackend {
	f := &FakeBackend{
		AcceptEmail:    "mitchell@example.com",
		AcceptPassword: "password",
		LoginUserID:    "user-1",
		LoginRole:      models.RoleStockMaster,
		LoginName:      "Mitchell Admin",
		Summary:        SampleSummary(),
		Documents:      SampleDocuments(),
		DocCount:       2,
		Products:       SampleProducts(),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", f.handleLogin)
	mux.HandleFunc("GET /dashboard/summary", f.handleSummary)
	mux.HandleFunc("POST /documents/filter", f.handleFilter)
	mux.HandleFunc("GET /stock/products", f.handleProducts)
	f.Server = httptest.NewServer(mux)
	return f
}

// Client returns an API client wired to the fake service.
func (f *FakeBackend) Client() *imsapi.Client {
	c, err := imsapi.New(f.Server.URL, 5*time.Second, zap.NewNop())
	if err != nil {
		panic(err) // httptest URLs always parse
	}
	return c
}

// Close shuts the fake service down.
func (f *FakeBackend) Close() {
	f.Server.Close()
}

func (f *FakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	ok := req.Email == f.AcceptEmail && req.Password == f.AcceptPassword
	resp := map[string]any{
		"success":      ok,
		"user_id":      f.LoginUserID,
		"role":         f.LoginRole,
		"profile_name": f.LoginName,
	}
	f.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}
	writeJSON(w, resp)
}

func (f *FakeBackend) handleSummary(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.LastUserID = r.Header.Get("User-Id")
	f.SummaryCalls++
	s := f.Summary
	f.mu.Unlock()
	writeJSON(w, s)
}

func (f *FakeBackend) handleFilter(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.LastUserID = r.Header.Get("User-Id")
	f.LastFilterBody = body
	f.FilterCalls++
	resp := map[string]any{
		"count":     f.DocCount,
		"documents": f.Documents,
	}
	f.mu.Unlock()
	writeJSON(w, resp)
}

func (f *FakeBackend) handleProducts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.LastUserID = r.Header.Get("User-Id")
	resp := map[string]any{
		"count":    len(f.Products),
		"products": f.Products,
	}
	f.mu.Unlock()
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// SampleSummary returns a dashboard snapshot with two locations and
// non-zero KPIs, suitable for rendering assertions.
func SampleSummary() models.Summary {
	return models.Summary{
		TotalProductsInStock: 1250,
		LowStockItems:        3,
		OutOfStockItems:      1,
		PendingReceipts:      2,
		PendingDeliveries:    4,
		TransfersScheduled:   1,
		AdjustmentsPending:   1,
		Locations: map[string]models.Location{
			"loc-main": {ID: "loc-main", Name: "Main Warehouse", Manager: "Dana"},
			"loc-east": {ID: "loc-east", Name: "East Depot", Manager: "Ravi"},
		},
		LocationChartData: []models.LocationStock{
			{Location: "Main Warehouse", Stock: 900},
			{Location: "East Depot", Stock: 350},
		},
		CategoryChartData: []models.CategoryShare{
			{Name: "Electronics", Value: 500, Percent: 40},
			{Name: "Peripherals", Value: 400, Percent: 32},
			{Name: "Components", Value: 350, Percent: 28},
		},
	}
}

// SampleDocuments returns two operations in created_at descending order.
func SampleDocuments() []models.Document {
	newer := mustTime("2026-08-30T14:05:00")
	older := mustTime("2026-08-29T09:30:00")
	return []models.Document{
		{
			ID:             "WH/IN/0042",
			Type:           models.DocTypeReceipt,
			Status:         models.StatusReady,
			CreatedBy:      "Mitchell Admin",
			CreatedAt:      newer,
			Lines:          []models.DocumentLine{{ProductID: "p-1", Qty: 5, Category: "Electronics"}},
			SourceLocation: "Vendor",
			TargetLocation: "Main Warehouse",
			CategoryList:   []string{"Electronics"},
		},
		{
			ID:             "WH/OUT/0017",
			Type:           models.DocTypeDelivery,
			Status:         models.StatusDone,
			CreatedBy:      "Mitchell Admin",
			CreatedAt:      older,
			Lines:          []models.DocumentLine{{ProductID: "p-2", Qty: 3, Category: "Peripherals"}},
			SourceLocation: "Main Warehouse",
			TargetLocation: "Customer",
			CategoryList:   []string{"Peripherals"},
		},
	}
}

// SampleProducts returns products covering all three stock badges.
func SampleProducts() []models.Product {
	return []models.Product{
		{ID: "p-1", Name: "USB-C Dock", Category: "Peripherals", LocationID: "loc-main", StockLevel: 40, ReorderPoint: 10},
		{ID: "p-2", Name: "27in Monitor", Category: "Electronics", LocationID: "loc-main", StockLevel: 4, ReorderPoint: 5},
		{ID: "p-3", Name: "HDMI Cable", Category: "Components", LocationID: "loc-east", StockLevel: 0, ReorderPoint: 20},
	}
}

func mustTime(s string) models.APITime {
	var t models.APITime
	if err := t.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		panic(err)
	}
	return t
}
