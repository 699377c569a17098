package models

import "testing"

func TestProductCount(t *testing.T) {
	doc := Document{Lines: []DocumentLine{
		{ProductID: "p-1", Qty: 2},
		{ProductID: "p-2", Qty: 3},
	}}
	if got := doc.ProductCount(); got != 5 {
		t.Errorf("ProductCount: got %d, want 5", got)
	}

	empty := Document{}
	if got := empty.ProductCount(); got != 0 {
		t.Errorf("ProductCount of empty document: got %d, want 0", got)
	}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want string
	}{
		{"both sides", Document{SourceLocation: "Vendor", TargetLocation: "Main"}, "Vendor → Main"},
		{"source only", Document{SourceLocation: "Main"}, "Main"},
		{"target only", Document{TargetLocation: "Main"}, "Main"},
		{"neither", Document{}, "—"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Route(); got != tt.want {
				t.Errorf("Route: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusDone, "green"},
		{StatusReady, "yellow"},
		{StatusWaiting, "orange"},
		{StatusDraft, "gray"},
		{StatusCanceled, "red"},
		{"Quarantined", "blue"},
		{"", "blue"},
	}
	for _, tt := range tests {
		if got := StatusColor(tt.status); got != tt.want {
			t.Errorf("StatusColor(%q): got %q, want %q", tt.status, got, tt.want)
		}
	}
}
