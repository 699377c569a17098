package viewcache

import (
	"testing"
	"time"

	"github.com/kestrelworks/invdash/internal/domain/models"
)

func snapAt(gen uint64, total int) Snapshot {
	return Snapshot{
		Summary:    models.Summary{TotalProductsInStock: total},
		Generation: gen,
		FetchedAt:  time.Now(),
	}
}

func TestLatestEmpty(t *testing.T) {
	c := New()
	if _, ok := c.Latest("sid-1"); ok {
		t.Error("expected no snapshot for unknown session")
	}
}

func TestStoreAndLatest(t *testing.T) {
	c := New()
	if !c.StoreIfCurrent("sid-1", snapAt(1, 100)) {
		t.Fatal("first store should be kept")
	}
	got, ok := c.Latest("sid-1")
	if !ok {
		t.Fatal("expected a snapshot")
	}
	if got.Summary.TotalProductsInStock != 100 {
		t.Errorf("TotalProductsInStock: got %d, want 100", got.Summary.TotalProductsInStock)
	}
}

func TestStoreIfCurrentDiscardsStale(t *testing.T) {
	c := New()
	c.StoreIfCurrent("sid-1", snapAt(5, 500))

	// A fetch started under an older generation finishes late.
	if c.StoreIfCurrent("sid-1", snapAt(3, 300)) {
		t.Error("stale snapshot should be discarded")
	}

	got, _ := c.Latest("sid-1")
	if got.Generation != 5 || got.Summary.TotalProductsInStock != 500 {
		t.Errorf("newer snapshot was overwritten: %+v", got)
	}
}

func TestStoreIfCurrentAcceptsSameGeneration(t *testing.T) {
	c := New()
	c.StoreIfCurrent("sid-1", snapAt(2, 200))
	if !c.StoreIfCurrent("sid-1", snapAt(2, 250)) {
		t.Error("same-generation store should replace (last fetch wins)")
	}
	got, _ := c.Latest("sid-1")
	if got.Summary.TotalProductsInStock != 250 {
		t.Errorf("got %d, want 250", got.Summary.TotalProductsInStock)
	}
}

func TestLoadingFlag(t *testing.T) {
	c := New()
	if c.Loading("sid-1") {
		t.Error("unknown session should not be loading")
	}
	c.SetLoading("sid-1", true)
	if !c.Loading("sid-1") {
		t.Error("expected loading after SetLoading")
	}

	// A successful store clears the flag.
	c.StoreIfCurrent("sid-1", snapAt(1, 10))
	if c.Loading("sid-1") {
		t.Error("store should clear the loading flag")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	c := New()
	c.StoreIfCurrent("sid-a", snapAt(1, 111))
	c.StoreIfCurrent("sid-b", snapAt(1, 222))

	a, _ := c.Latest("sid-a")
	b, _ := c.Latest("sid-b")
	if a.Summary.TotalProductsInStock != 111 || b.Summary.TotalProductsInStock != 222 {
		t.Error("snapshots bled across sessions")
	}
}

func TestDrop(t *testing.T) {
	c := New()
	c.StoreIfCurrent("sid-1", snapAt(1, 100))
	c.SetLoading("sid-1", true)

	c.Drop("sid-1")

	if _, ok := c.Latest("sid-1"); ok {
		t.Error("expected snapshot gone after Drop")
	}
	if c.Loading("sid-1") {
		t.Error("expected loading flag gone after Drop")
	}
}
