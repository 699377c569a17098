package models

import "testing"

func TestStockBadge(t *testing.T) {
	tests := []struct {
		name string
		p    Product
		want string
	}{
		{"out of stock", Product{StockLevel: 0, ReorderPoint: 10}, "out"},
		{"at reorder point", Product{StockLevel: 10, ReorderPoint: 10}, "low"},
		{"below reorder point", Product{StockLevel: 3, ReorderPoint: 10}, "low"},
		{"healthy", Product{StockLevel: 50, ReorderPoint: 10}, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.StockBadge(); got != tt.want {
				t.Errorf("StockBadge: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocationIDsSorted(t *testing.T) {
	s := Summary{Locations: map[string]Location{
		"loc-west": {ID: "loc-west", Name: "West"},
		"loc-east": {ID: "loc-east", Name: "East"},
		"loc-main": {ID: "loc-main", Name: "Main"},
	}}
	ids := s.LocationIDs()
	want := []string{"loc-east", "loc-main", "loc-west"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d]: got %q, want %q", i, ids[i], want[i])
		}
	}
}
