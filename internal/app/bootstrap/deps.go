// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/kestrelworks/invdash/internal/app/imsapi"
	"github.com/kestrelworks/invdash/internal/app/system/viewcache"
)

// Deps holds back-end dependencies for the app.
//
// invdash has no database of its own; all data comes from the remote
// inventory service, so the deps are the API client and the in-memory
// cache of rendered dashboard snapshots.
type Deps struct {
	API   *imsapi.Client
	Views *viewcache.Cache
}
