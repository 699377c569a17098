package imsapi_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/uistate"
	"github.com/kestrelworks/invdash/internal/testutil"
)

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com", "not a url at all\x00"} {
		if _, err := imsapi.New(raw, time.Second, zap.NewNop()); err == nil {
			t.Errorf("New(%q): expected error", raw)
		}
	}
}

func TestLoginSuccess(t *testing.T) {
	fake := testutil.NewFakeBackend()
	defer fake.Close()
	client := fake.Client()

	res, err := client.Login(context.Background(), "mitchell@example.com", "password")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success {
		t.Fatal("expected success for valid credentials")
	}
	if res.UserID != "user-1" {
		t.Errorf("UserID: got %q, want %q", res.UserID, "user-1")
	}
	if res.ProfileName != "Mitchell Admin" {
		t.Errorf("ProfileName: got %q, want %q", res.ProfileName, "Mitchell Admin")
	}
}

func TestLoginRejection(t *testing.T) {
	fake := testutil.NewFakeBackend()
	defer fake.Close()
	client := fake.Client()

	// A 401 with a message body should fold into the result, not error.
	res, err := client.Login(context.Background(), "mitchell@example.com", "wrong")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Success {
		t.Fatal("expected rejection for wrong password")
	}
	if res.Message != "Invalid email or password" {
		t.Errorf("Message: got %q", res.Message)
	}
}

func TestLoginTransportFailure(t *testing.T) {
	fake := testutil.NewFakeBackend()
	client := fake.Client()
	fake.Close() // nothing listening anymore

	_, err := client.Login(context.Background(), "mitchell@example.com", "password")
	if err == nil {
		t.Fatal("expected error when service is down")
	}
	if !imsapi.IsTransport(err) {
		t.Errorf("expected a transport error, got %v", err)
	}
}

func TestSummarySendsUserIDHeader(t *testing.T) {
	fake := testutil.NewFakeBackend()
	defer fake.Close()
	client := fake.Client()

	s, err := client.Summary(context.Background(), "user-42")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if fake.LastUserID != "user-42" {
		t.Errorf("User-Id header: got %q, want %q", fake.LastUserID, "user-42")
	}
	if s.TotalProductsInStock != 1250 {
		t.Errorf("TotalProductsInStock: got %d, want 1250", s.TotalProductsInStock)
	}
	if len(s.Locations) != 2 {
		t.Errorf("Locations: got %d, want 2", len(s.Locations))
	}
}

func TestFilterDocumentsBody(t *testing.T) {
	fake := testutil.NewFakeBackend()
	defer fake.Close()
	client := fake.Client()

	filters := uistate.NewFilterState()
	filters = filters.Toggle(uistate.DimStatus, "Done")
	filters = filters.Toggle(uistate.DimStatus, "Ready")
	filters = filters.Toggle(uistate.DimDocumentType, "Receipt")

	docs, count, err := client.FilterDocuments(context.Background(), "user-1", filters)
	if err != nil {
		t.Fatalf("FilterDocuments: %v", err)
	}
	if count != 2 {
		t.Errorf("count: got %d, want 2", count)
	}
	if len(docs) != 2 {
		t.Fatalf("documents: got %d, want 2", len(docs))
	}
	if docs[0].ID != "WH/IN/0042" {
		t.Errorf("first document: got %q", docs[0].ID)
	}

	// The request body must carry one string array per selected dimension.
	body := fake.LastFilterBody
	statuses, ok := body["status"].([]any)
	if !ok || len(statuses) != 2 {
		t.Fatalf("status in body: got %v", body["status"])
	}
	if statuses[0] != "Done" || statuses[1] != "Ready" {
		t.Errorf("status options: got %v", statuses)
	}
	if _, present := body["location"]; present {
		t.Error("unselected dimension should not appear in the body")
	}
}

func TestProducts(t *testing.T) {
	fake := testutil.NewFakeBackend()
	defer fake.Close()
	client := fake.Client()

	products, count, err := client.Products(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if count != 3 || len(products) != 3 {
		t.Fatalf("got count=%d len=%d, want 3/3", count, len(products))
	}
	if products[2].StockBadge() != "out" {
		t.Errorf("expected third sample product to be out of stock")
	}
}

func TestPing(t *testing.T) {
	fake := testutil.NewFakeBackend()
	client := fake.Client()

	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping against live service: %v", err)
	}

	fake.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping against closed service should fail")
	}
}
