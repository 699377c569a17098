// Package viewcache holds the last fetched dashboard snapshot per user
// session, keyed by the opaque session id. It exists for two reasons: the
// snapshot is far too large for a cookie, and it is where stale refreshes
// go to die — a snapshot tagged with an older state generation never
// overwrites one tagged with a newer generation, no matter what order the
// fetches complete in.
package viewcache

import (
	"sync"
	"time"

	"github.com/kestrelworks/invdash/internal/domain/models"
)

// Snapshot is one complete fetch result. It replaces the previous snapshot
// wholesale; nothing is merged.
type Snapshot struct {
	Summary    models.Summary
	Documents  []models.Document
	MatchCount int
	Generation uint64
	FetchedAt  time.Time
}

type entry struct {
	snap    Snapshot
	hasSnap bool
	loading bool
}

// Cache is safe for concurrent use.
type Cache struct {
	mu    sync.Mutex
	bySID map[string]*entry
}

func New() *Cache {
	return &Cache{bySID: map[string]*entry{}}
}

// Latest returns the current snapshot for the session, if any.
func (c *Cache) Latest(sid string) (Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.bySID[sid]
	if e == nil || !e.hasSnap {
		return Snapshot{}, false
	}
	return e.snap, true
}

// StoreIfCurrent stores snap unless a snapshot with a newer generation is
// already present. It reports whether the snapshot was kept; false means
// the result was stale and discarded.
func (c *Cache) StoreIfCurrent(sid string, snap Snapshot) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.ensure(sid)
	if e.hasSnap && e.snap.Generation > snap.Generation {
		return false
	}
	e.snap = snap
	e.hasSnap = true
	e.loading = false
	return true
}

// SetLoading flags the session as having a refresh in flight. The loading
// row in the operations table renders off this flag.
func (c *Cache) SetLoading(sid string, loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure(sid).loading = loading
}

// Loading reports whether a refresh is in flight for the session.
func (c *Cache) Loading(sid string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.bySID[sid]
	return e != nil && e.loading
}

// Drop removes everything cached for the session. Called on logout so no
// data leaks into the next sign-in.
func (c *Cache) Drop(sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.bySID, sid)
}

func (c *Cache) ensure(sid string) *entry {
	e := c.bySID[sid]
	if e == nil {
		e = &entry{}
		c.bySID[sid] = e
	}
	return e
}
